package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a user to a course they have paid for. A single row backs
// both derived views ("the user's enrolled courses" and "the course's
// enrolled students"), so the two sets cannot drift apart. Rows are written
// only by the payment confirmation flow.
type Enrollment struct {
	UserID     string    `json:"user_id"`
	CourseID   uuid.UUID `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
