package repository

import (
	"context"
	"errors"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review. One review per order is enforced by a
	// unique constraint on the order ID.
	Create(ctx context.Context, review *entity.Review) error

	// FindByOrderID retrieves the review for an order, if any.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ListByBranch retrieves reviews for orders of a branch, newest first.
	ListByBranch(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]*entity.Review, error)

	// AverageRatingByBranch returns the mean overall rating for a branch,
	// zero when the branch has no reviews yet.
	AverageRatingByBranch(ctx context.Context, branchID uuid.UUID) (float64, error)

	// AverageRatingsByStaff returns the mean overall rating per staff member.
	// Staff without reviews are absent from the result.
	AverageRatingsByStaff(ctx context.Context, staffIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}
