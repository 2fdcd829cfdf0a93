package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageName(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func TestOrderStatsPipelineShape(t *testing.T) {
	pipeline := orderStatsPipeline()
	require.Len(t, pipeline, 4)

	assert.Equal(t, "$lookup", stageName(t, pipeline[0]))
	assert.Equal(t, "$unwind", stageName(t, pipeline[1]))
	assert.Equal(t, "$group", stageName(t, pipeline[2]))
	assert.Equal(t, "$project", stageName(t, pipeline[3]))

	lookup := pipeline[0][0].Value.(bson.D)
	assert.Equal(t, bson.D{
		{Key: "from", Value: "menu"},
		{Key: "localField", Value: "menuItems"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "menuItemsData"},
	}, lookup)

	group := pipeline[2][0].Value.(bson.D)
	assert.Equal(t, "$menuItemsData.category", group[0].Value)

	// Totals are rounded to 2 decimal places in the projection.
	project := pipeline[3][0].Value.(bson.D)
	var total interface{}
	for _, e := range project {
		if e.Key == "total" {
			total = e.Value
		}
	}
	assert.Equal(t, bson.D{{Key: "$round", Value: bson.A{"$total", 2}}}, total)
}
