package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem represents a catalog dish. The collection is seeded outside this
// API and is read-only here.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}
