package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Session is an audit record of an issued token. It is write-only:
// tokens stay valid until natural expiry and logout happens client-side.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	ExpiresAt int64              `bson:"expires_at"`
}
