package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is a pending, unpurchased reference from a user (by email)
// to a menu item. Entries are deleted one by one from the cart page or
// in bulk when a payment completes.
type CartEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuItemID primitive.ObjectID `bson:"menuItemId" json:"menuItemId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
