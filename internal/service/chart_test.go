package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmatic/internal/entity"
)

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 0, calculatePercentage(0, 0))
	assert.Equal(t, 5000, calculatePercentage(50, 0))
	assert.Equal(t, 200, calculatePercentage(100, 50))
	assert.Equal(t, 50, calculatePercentage(50, 100))
	assert.Equal(t, 33, calculatePercentage(1, 3))
}

func TestCategoryShares(t *testing.T) {
	shares := categoryShares([]string{"laptop", "phone", "camera"}, []int{2, 1, 1}, 4)
	require.Len(t, shares, 3)
	assert.Equal(t, map[string]int{"laptop": 50}, shares[0])
	assert.Equal(t, map[string]int{"phone": 25}, shares[1])
	assert.Equal(t, map[string]int{"camera": 25}, shares[2])

	total := 0
	for _, s := range shares {
		for _, pct := range s {
			total += pct
		}
	}
	assert.LessOrEqual(t, total, 100)
}

func TestCategorySharesEmptyStore(t *testing.T) {
	shares := categoryShares([]string{"laptop", "phone"}, []int{0, 0}, 0)
	require.Len(t, shares, 2)
	assert.Equal(t, map[string]int{"laptop": 0}, shares[0])
	assert.Equal(t, map[string]int{"phone": 0}, shares[1])
}

func TestMonthlyBucketsSixMonths(t *testing.T) {
	today := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	records := []bucketRecord{
		{createdAt: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), value: 1},   // this month
		{createdAt: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), value: 1},   // five months back
		{createdAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), value: 1}, // six back, dropped
	}

	data := monthlyBuckets(6, today, records)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 1}, data)
}

func TestMonthlyBucketsSumsValues(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	records := []bucketRecord{
		{createdAt: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), value: 120},
		{createdAt: time.Date(2026, time.July, 30, 0, 0, 0, 0, time.UTC), value: 80},
	}

	data := monthlyBuckets(6, today, records)
	assert.Equal(t, []float64{0, 0, 0, 0, 200, 0}, data)
}

// Twelve-bucket series still only fill their most recent six slots; a
// record eight months back is fetched by the callers but never lands.
func TestMonthlyBucketsTwelveMonthWindow(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	records := []bucketRecord{
		{createdAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), value: 1},
		{createdAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), value: 1},    // five back -> index 6
		{createdAt: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), value: 1}, // eight back, dropped
	}

	data := monthlyBuckets(12, today, records)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, data)

	var filled int
	for i, v := range data {
		if v != 0 {
			assert.GreaterOrEqual(t, i, 6)
			filled++
		}
	}
	assert.Equal(t, 2, filled)
}

func TestCategoryDistribution(t *testing.T) {
	repo := newFakeProductRepo()
	repo.add(&entity.Product{Name: "a", Category: "laptop"})
	repo.add(&entity.Product{Name: "b", Category: "laptop"})
	repo.add(&entity.Product{Name: "c", Category: "phone"})

	shares, err := categoryDistribution(context.Background(), repo, []string{"laptop", "phone"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []map[string]int{{"laptop": 67}, {"phone": 33}}, shares)
}
