// Package store is the mongo-backed inventory repository: the generic form
// ledger store plus the server-side quantity pipeline.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/inventory"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
	ledgerstore "github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger/store"
)

const collection = "inventories"

type Store struct {
	*ledgerstore.Store[*inventory.Item]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: ledgerstore.New[*inventory.Item](db.Collection(collection), "barcode")}
}

// UpdateQuantities rewrites the matching array element via an aggregation
// pipeline update. current_quantity is computed inside the same operation,
// never client-side, so the scalar fields cannot race a concurrent writer.
func (s *Store) UpdateQuantities(ctx context.Context, formID, barcode string, addstock, sold float64, now time.Time) (ledger.WriteCounts, error) {
	match := bson.M{
		"id":            formID,
		"is_empty":      true,
		"items.barcode": barcode,
	}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"items": bson.M{
				"$map": bson.M{
					"input": "$items",
					"as":    "it",
					"in": bson.M{
						"$cond": bson.A{
							bson.M{"$eq": bson.A{"$$it.barcode", barcode}},
							bson.M{"$mergeObjects": bson.A{
								"$$it",
								bson.M{
									"addstock": addstock,
									"sold":     sold,
									"updated":  now,
									"current_quantity": bson.M{
										"$subtract": bson.A{
											bson.M{"$add": bson.A{"$$it.previous_quantity", addstock}},
											sold,
										},
									},
								},
							}},
							"$$it",
						},
					},
				},
			},
		}}},
	}

	res, err := s.Collection().UpdateOne(ctx, match, update)
	if err != nil {
		return ledger.WriteCounts{}, err
	}

	return ledger.WriteCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// ItemByKey projects only the element matching barcode out of the form's
// items array.
func (s *Store) ItemByKey(ctx context.Context, formID, barcode string) (*inventory.Item, bool, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"id": formID}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id": 0,
			"items": bson.M{
				"$filter": bson.M{
					"input": "$items",
					"as":    "it",
					"cond":  bson.M{"$eq": bson.A{"$$it.barcode", barcode}},
				},
			},
		}}},
		bson.D{{Key: "$limit", Value: 1}},
	}

	cur, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, false, err
	}

	var docs []struct {
		Items []*inventory.Item `bson:"items"`
	}

	if err := cur.All(ctx, &docs); err != nil {
		return nil, false, err
	}

	if len(docs) == 0 || len(docs[0].Items) == 0 {
		return nil, false, nil
	}

	return docs[0].Items[0], true, nil
}
