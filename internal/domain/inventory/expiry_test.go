package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"later today counts as today", time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{"early tomorrow is one day out", time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC), 1},
		{"three days out", time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC), 3},
		{"yesterday is minus one", time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC), -1},
		{"a week ago", time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC), -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.expiry, now))
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// 23:50 now against 00:10 next day is still one calendar day
	now := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)
	expiry := time.Date(2025, 6, 2, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(expiry, now))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, BandExpired, Classify(-1))
	assert.Equal(t, BandToday, Classify(0))
	assert.Equal(t, BandUrgent, Classify(1))
	assert.Equal(t, BandUrgent, Classify(3))
	assert.Equal(t, BandSoon, Classify(4))
	assert.Equal(t, BandSoon, Classify(7))
	assert.Equal(t, BandSafe, Classify(8))
	assert.Equal(t, BandSafe, Classify(365))
}

func TestSortByExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fridgeID := uuid.New()

	mk := func(name string, daysOut int) *Ingredient {
		ing, err := NewIngredient(fridgeID, name, CategoryVegetable, 1, UnitPiece,
			now, now.AddDate(0, 0, daysOut))
		require.NoError(t, err)
		return ing
	}

	items := []*Ingredient{
		mk("safe", 14),
		mk("expired", -2),
		mk("today-a", 0),
		mk("today-b", 0),
		mk("urgent", 2),
	}

	SortByExpiry(items, now)

	names := make([]string, len(items))
	for i, ing := range items {
		names[i] = ing.Name()
	}
	// Ascending by day offset; equal offsets keep insertion order
	assert.Equal(t, []string{"expired", "today-a", "today-b", "urgent", "safe"}, names)
}

func TestIngredientIsExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	ing, err := NewIngredient(uuid.New(), "우유", CategoryDairy, 1, UnitPack,
		now.AddDate(0, 0, -5), now.AddDate(0, 0, -1))
	require.NoError(t, err)

	assert.True(t, ing.IsExpired(now))
	assert.Equal(t, -1, ing.DaysUntilExpiry(now))

	fresh, err := NewIngredient(uuid.New(), "우유", CategoryDairy, 1, UnitPack,
		now, now)
	require.NoError(t, err)
	assert.False(t, fresh.IsExpired(now), "expiring today is not yet expired")
}
