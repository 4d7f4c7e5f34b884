package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCourse_EffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{"no discount", "100.00", 0, "100.00"},
		{"twenty percent", "100.00", 20, "80.00"},
		{"rounding half up", "49.99", 33, "33.49"},
		{"full discount", "100.00", 100, "0.00"},
		{"free course", "0.00", 50, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &Course{
				Price:           decimal.RequireFromString(tt.price),
				DiscountPercent: tt.discount,
			}
			assert.Equal(t, tt.want, course.EffectivePrice().StringFixed(2))
		})
	}
}

func TestCourse_EffectivePrice_NonIncreasingInDiscount(t *testing.T) {
	price := decimal.RequireFromString("73.21")
	prev := decimal.RequireFromString("74.00")

	for discount := 0; discount <= 100; discount++ {
		course := &Course{Price: price, DiscountPercent: discount}
		effective := course.EffectivePrice()
		assert.False(t, effective.IsNegative())
		assert.True(t, effective.LessThanOrEqual(prev), "discount %d raised the price", discount)
		prev = effective
	}
}

func TestCourse_ValidDiscount(t *testing.T) {
	assert.True(t, (&Course{DiscountPercent: 0}).ValidDiscount())
	assert.True(t, (&Course{DiscountPercent: 100}).ValidDiscount())
	assert.False(t, (&Course{DiscountPercent: -1}).ValidDiscount())
	assert.False(t, (&Course{DiscountPercent: 101}).ValidDiscount())
}

func TestCourse_AverageRating(t *testing.T) {
	course := &Course{}
	assert.Zero(t, course.AverageRating())

	course.Ratings = []Rating{
		{UserID: "u1", Rating: 5},
		{UserID: "u2", Rating: 4},
		{UserID: "u3", Rating: 2},
	}
	assert.InDelta(t, 3.6667, course.AverageRating(), 0.001)
}

func TestCourse_HasLectureAndTotals(t *testing.T) {
	course := &Course{
		Chapters: []Chapter{
			{ID: "ch-1", Lectures: []Lecture{{ID: "lec-1"}, {ID: "lec-2"}}},
			{ID: "ch-2", Lectures: []Lecture{{ID: "lec-3"}}},
		},
	}

	assert.True(t, course.HasLecture("lec-3"))
	assert.False(t, course.HasLecture("lec-4"))
	assert.Equal(t, 3, course.TotalLectures())
	assert.Equal(t, []string{"lec-1", "lec-2", "lec-3"}, course.LectureIDs())
}
