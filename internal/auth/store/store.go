// Package store is the mongo-backed auth repository (accounts and daily
// auth logs).
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/auth"
)

const (
	accountsCollection = "accounts"
	logsCollection     = "auth_logs"
)

type Store struct {
	accounts *mongo.Collection
	logs     *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		accounts: db.Collection(accountsCollection),
		logs:     db.Collection(logsCollection),
	}
}

func (s *Store) AccountByUsername(ctx context.Context, username string) (*auth.Account, bool, error) {
	var acc auth.Account

	err := s.accounts.FindOne(ctx, bson.M{"username": username}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return &acc, true, nil
}

func (s *Store) LogBetween(ctx context.Context, userID string, from, to time.Time) (*auth.Log, bool, error) {
	filter := bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": from, "$lt": to},
	}

	var log auth.Log

	err := s.logs.FindOne(ctx, filter).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return &log, true, nil
}

func (s *Store) InsertLog(ctx context.Context, log *auth.Log) error {
	_, err := s.logs.InsertOne(ctx, log)
	return err
}
