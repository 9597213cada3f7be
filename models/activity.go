package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a single logged workout or exercise session.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Type      string             `bson:"type" json:"type" binding:"required"`
	Duration  float64            `bson:"duration" json:"duration" binding:"required,gt=0"`
	Calories  float64            `bson:"calories" json:"calories" binding:"required"`
	Distance  float64            `bson:"distance,omitempty" json:"distance,omitempty"`
	Steps     int                `bson:"steps,omitempty" json:"steps,omitempty"`
	Intensity string             `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
