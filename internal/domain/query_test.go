package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceBucket_Contains(t *testing.T) {
	tests := []struct {
		bucket PriceBucket
		price  float64
		want   bool
	}{
		{PriceLow, 49.99, true},
		{PriceLow, 50, false},
		{PriceMedium, 50, true},
		{PriceMedium, 99.99, true},
		{PriceMedium, 100, false},
		{PriceHigh, 100, true},
		{PriceHigh, 199.99, true},
		{PriceHigh, 200, false},
		{PricePremium, 200, true},
		{PricePremium, 1200, true},
		{PriceBucket("cheap"), 10, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bucket.Contains(tt.price), "%s contains %v", tt.bucket, tt.price)
	}
}

func TestRatingBucket_Admits(t *testing.T) {
	assert.True(t, Rating4Plus.Admits(4))
	assert.True(t, Rating4Plus.Admits(4.9))
	assert.False(t, Rating4Plus.Admits(3.9))
	assert.True(t, Rating3Plus.Admits(3))
	assert.False(t, Rating3Plus.Admits(2.99))
	assert.False(t, RatingBucket("5+").Admits(5))
}

func TestQuery_IsEmpty(t *testing.T) {
	assert.True(t, Query{}.IsEmpty())
	assert.False(t, Query{Text: "clean"}.IsEmpty())
	assert.False(t, Query{PriceRange: []PriceBucket{PriceLow}}.IsEmpty())
}

func TestDraft_Transitions(t *testing.T) {
	d := &Draft{State: DraftStateDraft}
	assert.True(t, d.CanSubmit())
	assert.True(t, d.CanUpdate())

	d.State = DraftStateSubmitting
	assert.False(t, d.CanSubmit())
	assert.False(t, d.CanUpdate())

	d.State = DraftStateFailed
	assert.True(t, d.CanSubmit())
	assert.True(t, d.CanUpdate())

	d.State = DraftStateConfirmed
	assert.False(t, d.CanSubmit())
	assert.False(t, d.CanUpdate())
}
