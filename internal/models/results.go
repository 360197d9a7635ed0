package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult echoes the generated identifier of a successful insert.
// InsertedID is a pointer so the duplicate-registration sentinel can carry
// an explicit null.
type InsertResult struct {
	Message    string              `json:"message,omitempty"`
	InsertedID *primitive.ObjectID `json:"insertedId"`
}

// UpdateResult echoes the driver's matched/modified counts
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult echoes the driver's deleted count
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// TokenResponse carries an issued session token
type TokenResponse struct {
	Token string `json:"token"`
}
