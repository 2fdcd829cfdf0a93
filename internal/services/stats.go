package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type StatsService struct {
	db *mongo.Database
}

func NewStatsService(db *mongo.Database) *StatsService {
	return &StatsService{db: db}
}

// OrderStats joins every payment's purchased menu items against the
// menu catalog and rolls them up per category. A menu reference with no
// catalog match contributes nothing to the result. Row order is
// whatever the grouping produces.
func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.db.Collection("payments").Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %v", err)
	}

	stats := []models.CategoryStat{}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode order stats: %v", err)
	}

	return stats, nil
}

// orderStatsPipeline expands each payment into one row per purchased
// dish, groups by category and rounds the per-category total to 2
// decimal places.
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItems"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItemsData"},
		}}},
		{{Key: "$unwind", Value: "$menuItemsData"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItemsData.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$menuItemsData.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "total", Value: bson.D{{Key: "$round", Value: bson.A{"$total", 2}}}},
		}}},
	}
}

// AdminStats returns the dashboard summary: document counts per
// collection plus total revenue. Counts use the collection's estimate,
// which is good enough for a dashboard.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	users, err := s.db.Collection("users").EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %v", err)
	}
	products, err := s.db.Collection("menu").EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count menu items: %v", err)
	}
	orders, err := s.db.Collection("payments").EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %v", err)
	}

	revenue, err := s.totalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		Users:    users,
		Products: products,
		Orders:   orders,
		Revenue:  revenue,
	}, nil
}

func (s *StatsService) totalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := s.db.Collection("payments").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %v", err)
	}

	var rows []struct {
		Revenue float64 `bson:"revenue"`
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %v", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Revenue, nil
}
