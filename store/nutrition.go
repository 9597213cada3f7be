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

// nutritionHistoryLimit caps the nutrition feed, newest first.
const nutritionHistoryLimit = 30

func (s *Store) ListNutrition(ctx context.Context, userID primitive.ObjectID) ([]models.Nutrition, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(nutritionHistoryLimit)
	cursor, err := s.db.Collection(nutritionColl).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.Nutrition{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) CreateNutrition(ctx context.Context, entry *models.Nutrition) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.db.Collection(nutritionColl).InsertOne(ctx, entry)
	return err
}

func (s *Store) UpdateNutrition(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Nutrition, error) {
	if err := s.ownedBy(ctx, nutritionColl, id, userID); err != nil {
		return nil, err
	}

	var updated models.Nutrition
	if len(fields) == 0 {
		if err := s.db.Collection(nutritionColl).FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(nutritionColl).
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

func (s *Store) DeleteNutrition(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.ownedBy(ctx, nutritionColl, id, userID); err != nil {
		return err
	}
	_, err := s.db.Collection(nutritionColl).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
