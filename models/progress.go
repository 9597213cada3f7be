package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurements is the fixed set of body measurements tracked per
// progress entry, in centimeters.
type Measurements struct {
	Chest  float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// Progress is a body-composition snapshot at a point in time.
type Progress struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"userId"`
	Weight       float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFat      float64            `bson:"body_fat,omitempty" json:"bodyFat,omitempty"`
	Measurements Measurements       `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
