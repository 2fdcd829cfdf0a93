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

type CartService struct {
	collection *mongo.Collection
}

func NewCartService(db *mongo.Database) *CartService {
	return &CartService{collection: db.Collection("carts")}
}

func (s *CartService) AddEntry(ctx context.Context, entry *models.CartEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *CartService) EntriesByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	entries := []models.CartEntry{}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *CartService) DeleteEntry(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid cart entry id format: %v", err)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
