package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 26, AgeAt(time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC), now))
	// Birthday later this year: not yet a full year older.
	assert.Equal(t, 25, AgeAt(time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC), now))
	// Birthday today counts.
	assert.Equal(t, 26, AgeAt(time.Date(2000, time.August, 29, 0, 0, 0, 0, time.UTC), now))
}
