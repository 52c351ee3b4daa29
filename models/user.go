package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User holds the structure for the users collection in mongo. The password hash is
// stored but never serialized into responses.
type User struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName   string             `json:"FullName" bson:"FullName"`
	Email      string             `json:"Email" bson:"Email"`
	Phone      string             `json:"Phone" bson:"Phone"`
	Password   string             `json:"-" bson:"Password"`
	AadharNo   string             `json:"AadharNo" bson:"AadharNo"`
	ProfilePic string             `json:"profilePic" bson:"profilePic"`
	AadharImg  string             `json:"aadharImg" bson:"aadharImg"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LoginResponse is returned by the login endpoints alongside a 200
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
