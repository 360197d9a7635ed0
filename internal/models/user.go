package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only elevated role value. A user without a role is a
// regular user.
const RoleAdmin = "admin"

// User represents a registered user
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the elevated role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
