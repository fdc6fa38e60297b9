package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// recentWindow bounds how far back monthlyBuckets attributes a record. It
// stays at six months even when more buckets are requested, so a
// twelve-bucket series only ever fills its most recent half. Known quirk,
// kept for parity with the dashboards clients already render.
const recentWindow = 6

// calculatePercentage compares this month's value to the previous month's
// as a rounded percent. A zero previous month yields thisMonth*100 instead
// of a division by zero.
func calculatePercentage(thisMonth, prevMonth float64) int {
	if prevMonth == 0 {
		return int(math.Round(thisMonth * 100))
	}
	return int(math.Round(thisMonth / prevMonth * 100))
}

type bucketRecord struct {
	createdAt time.Time
	value     float64
}

// monthlyBuckets reduces timestamped records into a fixed-length series:
// index length-1 is the current month, index 0 the furthest back. Records
// older than recentWindow months are dropped.
func monthlyBuckets(length int, today time.Time, records []bucketRecord) []float64 {
	data := make([]float64, length)
	for _, rec := range records {
		diff := (int(today.Month()) - int(rec.createdAt.Month()) + 12) % 12
		if diff < recentWindow {
			data[length-diff-1] += rec.value
		}
	}
	return data
}

// monthlyCounts buckets occurrences rather than sums.
func monthlyCounts(length int, today time.Time, createdAt []time.Time) []float64 {
	records := make([]bucketRecord, len(createdAt))
	for i, t := range createdAt {
		records[i] = bucketRecord{createdAt: t, value: 1}
	}
	return monthlyBuckets(length, today, records)
}

// categoryShares maps each category to its rounded share of the total
// product count, in the given category order. A zero total yields zero
// shares rather than NaN.
func categoryShares(categories []string, counts []int, total int) []map[string]int {
	shares := make([]map[string]int, 0, len(categories))
	for i, category := range categories {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[i]) / float64(total) * 100))
		}
		shares = append(shares, map[string]int{category: pct})
	}
	return shares
}

// categoryDistribution counts each category concurrently and reduces to
// percentage shares.
func categoryDistribution(ctx context.Context, repo ProductRepository, categories []string, total int) ([]map[string]int, error) {
	counts := make([]int, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			n, err := repo.CountByCategory(gctx, category)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return categoryShares(categories, counts, total), nil
}
