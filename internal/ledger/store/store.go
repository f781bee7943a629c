// Package store implements ledger.Repository on a MongoDB collection. All
// cross-request coordination is pushed to mongo's per-document atomicity:
// every write here is a single filtered update.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type Store[T ledger.Entry] struct {
	col      *mongo.Collection
	keyField string
}

// New builds a store over col. keyField is the business-key field within
// items ("barcode", "receipt_number").
func New[T ledger.Entry](col *mongo.Collection, keyField string) *Store[T] {
	return &Store[T]{col: col, keyField: keyField}
}

// Collection exposes the underlying collection for domain stores that embed
// this one and add collection-specific pipelines.
func (s *Store[T]) Collection() *mongo.Collection { return s.col }

// formDoc is the persisted shape of a form. Documents are addressed by
// their business "id" field (a uuid) so the raw mongo _id never crosses the
// repository boundary.
type formDoc[T ledger.Entry] struct {
	ID      string    `bson:"id"`
	QRCode  string    `bson:"current_form_qr_code"`
	IsEmpty bool      `bson:"is_empty"`
	Created time.Time `bson:"created"`
	Items   []T       `bson:"items"`
}

func (d *formDoc[T]) form() *ledger.Form[T] {
	return &ledger.Form[T]{
		ID:      d.ID,
		QRCode:  d.QRCode,
		IsEmpty: d.IsEmpty,
		Created: d.Created,
		Items:   d.Items,
	}
}

// itemProjection narrows items to sequence number and business key for the
// locate/reload reads; the allocator never needs full payloads.
func (s *Store[T]) itemProjection() bson.M {
	return bson.M{
		"id":                   1,
		"current_form_qr_code": 1,
		"is_empty":             1,
		"created":              1,
		"items.id":             1,
		"items.item_number":    1,
		"items." + s.keyField:  1,
	}
}

func (s *Store[T]) FindOpen(ctx context.Context, limit int64) ([]*ledger.Form[T], error) {
	cur, err := s.col.Find(ctx, bson.M{"is_empty": true},
		options.Find().SetLimit(limit).SetProjection(s.itemProjection()))
	if err != nil {
		return nil, err
	}

	var docs []formDoc[T]
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	forms := make([]*ledger.Form[T], len(docs))
	for i := range docs {
		forms[i] = docs[i].form()
	}

	return forms, nil
}

func (s *Store[T]) Reload(ctx context.Context, formID string) (*ledger.Form[T], bool, error) {
	var doc formDoc[T]

	err := s.col.FindOne(ctx, bson.M{"id": formID, "is_empty": true},
		options.FindOne().SetProjection(s.itemProjection())).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return doc.form(), true, nil
}

func (s *Store[T]) Fetch(ctx context.Context, formID string) (*ledger.Form[T], bool, error) {
	var doc formDoc[T]

	err := s.col.FindOne(ctx, bson.M{"id": formID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return doc.form(), true, nil
}

func (s *Store[T]) PushAndReturn(ctx context.Context, formID string, item T) (*ledger.Form[T], bool, error) {
	filter := bson.M{
		"id":                formID,
		"is_empty":          true,
		"items.item_number": bson.M{"$ne": item.Number()},
	}

	var doc formDoc[T]

	err := s.col.FindOneAndUpdate(ctx, filter,
		bson.M{"$push": bson.M{"items": item}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return doc.form(), true, nil
}

func (s *Store[T]) PullByKey(ctx context.Context, formID, key string) (ledger.WriteCounts, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": formID},
		bson.M{"$pull": bson.M{"items": bson.M{s.keyField: key}}})
	if err != nil {
		return ledger.WriteCounts{}, err
	}

	return ledger.WriteCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (s *Store[T]) SetItems(ctx context.Context, formID string, items []T) (ledger.WriteCounts, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": formID},
		bson.M{"$set": bson.M{"items": items}})
	if err != nil {
		return ledger.WriteCounts{}, err
	}

	return ledger.WriteCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
