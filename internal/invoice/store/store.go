// Package store is the mongo-backed sales-invoice repository.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
	ledgerstore "github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger/store"
)

const collection = "sales_invoices"

type Store struct {
	*ledgerstore.Store[*invoice.Item]
}

func New(db *mongo.Database) *Store {
	return &Store{Store: ledgerstore.New[*invoice.Item](db.Collection(collection), "receipt_number")}
}

func (s *Store) Employees(ctx context.Context, formID string) ([]invoice.Employee, bool, error) {
	var doc struct {
		Employees []invoice.Employee `bson:"employees"`
	}

	err := s.Collection().FindOne(ctx, bson.M{"id": formID, "is_empty": true},
		options.FindOne().SetProjection(bson.M{"employees": 1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return doc.Employees, true, nil
}

func (s *Store) SetEmployees(ctx context.Context, formID string, employees []invoice.Employee) (ledger.WriteCounts, error) {
	res, err := s.Collection().UpdateOne(ctx,
		bson.M{"id": formID, "is_empty": true},
		bson.M{"$set": bson.M{"employees": employees}})
	if err != nil {
		return ledger.WriteCounts{}, err
	}

	return ledger.WriteCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
