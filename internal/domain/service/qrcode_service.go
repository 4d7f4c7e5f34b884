package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates shareable QR codes for courses.
type QRCodeService interface {
	// GenerateCourseQR renders a PNG QR code pointing at the public course page.
	GenerateCourseQR(courseID uuid.UUID) ([]byte, error)
}
