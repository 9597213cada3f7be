package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal statuses. Transitions are never automated: the client sets the
// status explicitly.
const (
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
	GoalFailed     = "failed"
)

// Goal is a user-defined target with a deadline.
type Goal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Type        string             `bson:"type" json:"type" binding:"required,oneof=weight workout nutrition"`
	Target      float64            `bson:"target" json:"target" binding:"required"`
	Deadline    time.Time          `bson:"deadline" json:"deadline" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status" binding:"omitempty,oneof=in-progress completed failed"`
}
