package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lecture is a single playable unit inside a chapter.
type Lecture struct {
	ID              string `json:"id"`               // Stable lecture ID within the course content.
	Title           string `json:"title"`            // Display title.
	URL             string `json:"url"`              // Video URL; blanked for non-preview lectures in public views.
	DurationMinutes int    `json:"duration_minutes"` // Rounded playback length.
	PreviewFree     bool   `json:"preview_free"`     // Whether the lecture is watchable without enrollment.
}

// Chapter groups lectures inside a course.
type Chapter struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Order    int       `json:"order"`
	Lectures []Lecture `json:"lectures"`
}

// Rating is one user's 1-5 score for a course. At most one rating persists
// per (course, user); a resubmission overwrites.
type Rating struct {
	UserID string `json:"user_id"`
	Rating int    `json:"rating"`
}

// Course represents a published or draft course owned by an educator.
// Price and DiscountPercent are the canonical pricing inputs: the effective
// price is always derived server-side, never taken from a client.
type Course struct {
	ID              uuid.UUID       `json:"id"`
	EducatorID      string          `json:"educator_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ThumbnailURL    string          `json:"thumbnail_url"`
	Price           decimal.Decimal `json:"price"`            // List price in major currency units.
	DiscountPercent int             `json:"discount_percent"` // 0-100 inclusive.
	Published       bool            `json:"published"`
	Chapters        []Chapter       `json:"chapters,omitempty"`
	Ratings         []Rating        `json:"ratings,omitempty"`
	EnrolledCount   int64           `json:"enrolled_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ValidDiscount reports whether the discount is within the 0-100 invariant.
func (c *Course) ValidDiscount() bool {
	return c.DiscountPercent >= 0 && c.DiscountPercent <= 100
}

// EffectivePrice returns price * (1 - discount/100) rounded half-up to two
// decimal places. It is non-negative and non-increasing in the discount.
func (c *Course) EffectivePrice() decimal.Decimal {
	discount := decimal.NewFromInt(int64(c.DiscountPercent)).Div(decimal.NewFromInt(100))

	return c.Price.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)
}

// AverageRating returns the mean of all submitted ratings, zero when unrated.
func (c *Course) AverageRating() float64 {
	if len(c.Ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range c.Ratings {
		sum += r.Rating
	}

	return float64(sum) / float64(len(c.Ratings))
}

// LectureIDs returns the flattened set of lecture IDs across all chapters.
func (c *Course) LectureIDs() []string {
	var ids []string
	for _, chapter := range c.Chapters {
		for _, lecture := range chapter.Lectures {
			ids = append(ids, lecture.ID)
		}
	}

	return ids
}

// HasLecture reports whether the lecture ID belongs to the course content.
func (c *Course) HasLecture(lectureID string) bool {
	for _, chapter := range c.Chapters {
		for _, lecture := range chapter.Lectures {
			if lecture.ID == lectureID {
				return true
			}
		}
	}

	return false
}

// TotalLectures counts lectures across all chapters.
func (c *Course) TotalLectures() int {
	var total int
	for _, chapter := range c.Chapters {
		total += len(chapter.Lectures)
	}

	return total
}
