package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer testimonial. Reviews are read-only through the
// API; they are seeded out of band.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}
