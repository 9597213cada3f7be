package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nutrition is one logged food item within a meal.
type Nutrition struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`
	Meal     string             `bson:"meal" json:"meal" binding:"required"`
	Food     string             `bson:"food" json:"food" binding:"required"`
	Calories float64            `bson:"calories" json:"calories" binding:"required"`
	Protein  float64            `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    float64            `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fats     float64            `bson:"fats,omitempty" json:"fats,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
}
