package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one completed charge. A payment is never mutated
// after insertion. CartItems are the cart entries that were purchased
// and cleared; MenuItems are the dishes they referenced, joined against
// the menu catalog by the order-stats aggregation.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	CartItems     []primitive.ObjectID `bson:"cartItems" json:"cartItems"`
	MenuItems     []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time            `bson:"date" json:"date"`
}
