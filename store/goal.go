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

func (s *Store) ListGoals(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	cursor, err := s.db.Collection(goalsColl).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []models.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	goal.ID = primitive.NewObjectID()
	_, err := s.db.Collection(goalsColl).InsertOne(ctx, goal)
	return err
}

func (s *Store) UpdateGoal(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Goal, error) {
	if err := s.ownedBy(ctx, goalsColl, id, userID); err != nil {
		return nil, err
	}

	var updated models.Goal
	if len(fields) == 0 {
		if err := s.db.Collection(goalsColl).FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(goalsColl).
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

func (s *Store) DeleteGoal(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.ownedBy(ctx, goalsColl, id, userID); err != nil {
		return err
	}
	_, err := s.db.Collection(goalsColl).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
