package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	assert.Equal(t, StatusShipped, NextStatus(StatusProcessing))
	assert.Equal(t, StatusDelivered, NextStatus(StatusShipped))

	// Delivered is terminal; advancing again keeps it there.
	assert.Equal(t, StatusDelivered, NextStatus(StatusDelivered))

	// Anything unrecognized clamps straight to Delivered.
	assert.Equal(t, StatusDelivered, NextStatus("Pending"))
	assert.Equal(t, StatusDelivered, NextStatus(""))
}

func TestProductFilterOffset(t *testing.T) {
	assert.Equal(t, 0, ProductFilter{Page: 1, Limit: 8}.Offset())
	assert.Equal(t, 16, ProductFilter{Page: 3, Limit: 8}.Offset())
	assert.Equal(t, 0, ProductFilter{Page: 0, Limit: 8}.Offset())
}
