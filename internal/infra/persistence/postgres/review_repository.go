package postgres

import (
	"context"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review. The unique index on order_id enforces one
// review per order.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists.WrapMessage("order already reviewed")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByOrderID retrieves the review for an order, if any.
func (repo *reviewRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by order id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByBranch retrieves reviews for orders of a branch, newest first.
func (repo *reviewRepository) ListByBranch(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.branch_id = ?", branchID).
		Order("reviews.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by branch")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// AverageRatingByBranch returns the mean overall rating for a branch,
// zero when the branch has no reviews yet.
func (repo *reviewRepository) AverageRatingByBranch(ctx context.Context, branchID uuid.UUID) (float64, error) {
	var avg *float64

	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("AVG(reviews.rating)").
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.branch_id = ?", branchID).
		Scan(&avg).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to average branch rating")
	}
	if avg == nil {
		return 0, nil
	}

	return *avg, nil
}

// AverageRatingsByStaff returns the mean overall rating per staff member.
func (repo *reviewRepository) AverageRatingsByStaff(ctx context.Context, staffIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	if len(staffIDs) == 0 {
		return map[uuid.UUID]float64{}, nil
	}

	var rows []struct {
		StaffID uuid.UUID
		Avg     float64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("staff_id, AVG(rating) AS avg").
		Where("staff_id IN ?", staffIDs).
		Group("staff_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to average staff ratings")
	}

	ratings := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		ratings[row.StaffID] = row.Avg
	}

	return ratings, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CustomerID:     data.CustomerID,
		StaffID:        data.StaffID,
		Rating:         data.Rating,
		ServiceQuality: data.ServiceQuality,
		Timeliness:     data.Timeliness,
		Communication:  data.Communication,
		Comment:        data.Comment,
		CreatedAt:      data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CustomerID:     data.CustomerID,
		StaffID:        data.StaffID,
		Rating:         data.Rating,
		ServiceQuality: data.ServiceQuality,
		Timeliness:     data.Timeliness,
		Communication:  data.Communication,
		Comment:        data.Comment,
	}
}
