package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document. The password field holds the bcrypt
// hash and is never serialized to JSON.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoogleID      string             `bson:"google_id,omitempty" json:"-"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password,omitempty" json:"-"`
	Weight        float64            `bson:"weight" json:"weight"`
	Height        float64            `bson:"height" json:"height"`
	Age           int                `bson:"age" json:"age"`
	ActivityLevel string             `bson:"activity_level" json:"activityLevel"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Physiology defaults applied at registration when the client does not
// supply them.
const (
	DefaultWeight        = 70
	DefaultHeight        = 170
	DefaultAge           = 25
	DefaultActivityLevel = "moderate"
)
