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

type MenuService struct {
	collection *mongo.Collection
}

func NewMenuService(db *mongo.Database) *MenuService {
	return &MenuService{collection: db.Collection("menu")}
}

func (s *MenuService) MenuList(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, item *models.MenuItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// DeleteMenuItem removes one dish from the catalog and returns how many
// documents were deleted. Payments that reference the dish keep their
// reference; the order-stats join drops it silently.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid menu item id format: %v", err)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
