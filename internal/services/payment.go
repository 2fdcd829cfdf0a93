package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type PaymentService struct {
	db *mongo.Database
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{db: db}
}

// CompletePayment records the payment and clears the purchased cart
// entries, returning the inserted payment id and how many entries were
// removed. The insert and the delete are two separate operations with
// no transaction around them: a crash between the two leaves the
// payment recorded with its cart entries still present. That window is
// accepted, not masked.
func (s *PaymentService) CompletePayment(ctx context.Context, payment *models.Payment) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	result, err := s.db.Collection("payments").InsertOne(ctx, payment)
	if err != nil {
		return "", 0, fmt.Errorf("failed to save payment: %v", err)
	}
	insertedID := result.InsertedID.(primitive.ObjectID).Hex()

	if len(payment.CartItems) == 0 {
		return insertedID, 0, nil
	}

	filter := bson.M{"_id": bson.M{"$in": payment.CartItems}}
	deleteResult, err := s.db.Collection("carts").DeleteMany(ctx, filter)
	if err != nil {
		return insertedID, 0, fmt.Errorf("payment %s saved but cart cleanup failed: %v", insertedID, err)
	}

	return insertedID, deleteResult.DeletedCount, nil
}
