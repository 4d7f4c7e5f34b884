package usecase

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"
)

// UserUsecase serves the student's own account surface.
type UserUsecase interface {
	// GetOrCreateUser returns the account for the verified identity,
	// creating it from the token claims on the first authenticated request.
	GetOrCreateUser(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// GetEnrolledCourses lists the courses the user is enrolled in, with
	// full content (the player needs lecture URLs).
	GetEnrolledCourses(ctx context.Context, userID string) ([]*entity.Course, error)
}
