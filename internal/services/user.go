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

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// CreateUser inserts the user unless the email is already registered.
// Returns the inserted id and whether the user already existed.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", true, nil
	}
	if err != mongo.ErrNoDocuments {
		return "", false, fmt.Errorf("failed to check existing user: %v", err)
	}

	user.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", false, err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), false, nil
}

func (s *UserService) UserList(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// IsAdmin reports whether the user behind this email holds the admin
// role. A missing user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch user: %v", err)
	}

	return user.IsAdmin(), nil
}

// PromoteToAdmin sets the admin role on the user with the given id and
// returns how many documents were modified.
func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid user id format: %v", err)
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to promote user: %v", err)
	}

	return result.ModifiedCount, nil
}
