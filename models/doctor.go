package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor holds the structure for the doctors collection in mongo
type Doctor struct {
	ID         primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string                 `json:"name" bson:"name"`
	Email      string                 `json:"email" bson:"email"`
	Password   string                 `json:"-" bson:"password"`
	Degree     string                 `json:"degree" bson:"degree"`
	About      string                 `json:"about,omitempty" bson:"about,omitempty"`
	Fees       string                 `json:"fees" bson:"fees"`
	Speciality string                 `json:"speciality" bson:"speciality"`
	Experience string                 `json:"experience" bson:"experience"`
	Address    map[string]interface{} `json:"address" bson:"address"`
	Image      string                 `json:"image" bson:"image"`
	CreatedAt  time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt" bson:"updatedAt"`
}
