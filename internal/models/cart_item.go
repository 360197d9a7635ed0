package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem joins a menu item to the owning user's email with a price
// snapshot. Duplicate additions are allowed and create separate records.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
