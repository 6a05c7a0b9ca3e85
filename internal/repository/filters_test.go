//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
)

func TestBuildMenuFilter(t *testing.T) {
	available := true

	tests := []struct {
		name   string
		filter model.MenuItemFilter
		want   bson.M
	}{
		{"empty", model.MenuItemFilter{}, bson.M{}},
		{"category", model.MenuItemFilter{Category: "starter"}, bson.M{"category": "starter"}},
		{"available", model.MenuItemFilter{Available: &available}, bson.M{"available": true}},
		{
			name:   "search is escaped",
			filter: model.MenuItemFilter{Search: "tikka (half)"},
			want:   bson.M{"name": bson.M{"$regex": `tikka \(half\)`, "$options": "i"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildMenuFilter(tt.filter))
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, defaultListLimit, clampLimit(-1))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, maxListLimit, clampLimit(10_000))
}

func TestBuildLogFilter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := buildLogFilter(LogQueryOptions{
		RequestID:  "req-1",
		ActionType: "quote",
		StartTime:  &start,
	})

	assert.Equal(t, bson.M{
		"request_id":  "req-1",
		"action_type": "quote",
		"timestamp":   bson.M{"$gte": start},
	}, got)
}

func TestStamp(t *testing.T) {
	entry := &LogEntryDocument{Message: "x"}
	stamp(entry)

	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	id := entry.ID
	stamp(entry)
	assert.Equal(t, id, entry.ID)
}
