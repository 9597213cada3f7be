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

// activityHistoryLimit caps the activity feed, newest first.
const activityHistoryLimit = 50

func (s *Store) ListActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(activityHistoryLimit)
	cursor, err := s.db.Collection(activitiesColl).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.Activity{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) CreateActivity(ctx context.Context, activity *models.Activity) error {
	activity.ID = primitive.NewObjectID()
	_, err := s.db.Collection(activitiesColl).InsertOne(ctx, activity)
	return err
}

func (s *Store) UpdateActivity(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Activity, error) {
	if err := s.ownedBy(ctx, activitiesColl, id, userID); err != nil {
		return nil, err
	}

	var updated models.Activity
	if len(fields) == 0 {
		if err := s.db.Collection(activitiesColl).FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(activitiesColl).
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

func (s *Store) DeleteActivity(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.ownedBy(ctx, activitiesColl, id, userID); err != nil {
		return err
	}
	_, err := s.db.Collection(activitiesColl).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
