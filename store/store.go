package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	usersColl      = "users"
	sessionsColl   = "sessions"
	activitiesColl = "activities"
	goalsColl      = "goals"
	nutritionColl  = "nutrition"
	progressColl   = "progress"
)

// Store wraps the application's MongoDB database. All resource access
// goes through it so ownership checks live in one place.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ownedBy fetches the record by id and compares its owner. The fetch
// happens before any mutation so callers can tell a missing record
// (ErrNotFound) apart from someone else's record (ErrForbidden).
func (s *Store) ownedBy(ctx context.Context, coll string, id, userID primitive.ObjectID) error {
	var doc struct {
		UserID primitive.ObjectID `bson:"user_id"`
	}
	err := s.db.Collection(coll).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if doc.UserID != userID {
		return ErrForbidden
	}
	return nil
}
