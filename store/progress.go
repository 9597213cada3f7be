package store

import (
	"context"
	"errors"

	"fittrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) ListProgress(ctx context.Context, userID primitive.ObjectID) ([]models.Progress, error) {
	cursor, err := s.db.Collection(progressColl).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.Progress{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) CreateProgress(ctx context.Context, entry *models.Progress) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.db.Collection(progressColl).InsertOne(ctx, entry)
	return err
}

func (s *Store) UpdateProgress(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Progress, error) {
	if err := s.ownedBy(ctx, progressColl, id, userID); err != nil {
		return nil, err
	}

	var updated models.Progress
	if len(fields) == 0 {
		if err := s.db.Collection(progressColl).FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(progressColl).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteProgress(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.ownedBy(ctx, progressColl, id, userID); err != nil {
		return err
	}
	_, err := s.db.Collection(progressColl).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
