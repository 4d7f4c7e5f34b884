package postgres

import (
	"context"
	"time"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// purchaseRepository implements the domain.PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// CreatePurchase persists a new purchase record.
func (repo *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return errors.Wrap(err, "failed to create purchase")
	}

	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindPurchaseByID retrieves a purchase by ID.
func (repo *purchaseRepository) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by id")
	}

	return toPurchaseDomain(&purchaseM)
}

// TransitionFromPending moves the purchase from pending to the given terminal
// status with a conditional write. The status predicate in the WHERE clause
// makes the first delivery win and every later one a no-op.
func (repo *purchaseRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to entity.PurchaseStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ? AND status = ?", id, string(entity.PurchaseStatusPending)).
		Update("status", string(to))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition purchase status")
	}

	return result.RowsAffected > 0, nil
}

// FailStalePending marks purchases pending for longer than maxAge as failed.
func (repo *purchaseRepository) FailStalePending(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)

	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("status = ? AND created_at < ?", string(entity.PurchaseStatusPending), cutoff).
		Update("status", string(entity.PurchaseStatusFailed))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to fail stale pending purchases")
	}

	return result.RowsAffected, nil
}

// SumCompletedByEducator totals completed purchase amounts across the
// educator's courses.
func (repo *purchaseRepository) SumCompletedByEducator(ctx context.Context, educatorID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Joins("JOIN courses ON courses.id = purchases.course_id").
		Where("courses.educator_id = ? AND purchases.status = ?", educatorID, string(entity.PurchaseStatusCompleted)).
		Select("COALESCE(SUM(purchases.amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed purchases")
	}

	return total, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) (*entity.Purchase, error) {
	if data == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse stored amount %q", data.Amount)
	}

	return &entity.Purchase{
		ID:        data.ID,
		CourseID:  data.CourseID,
		UserID:    data.UserID,
		Amount:    amount,
		Currency:  data.Currency,
		Status:    entity.PurchaseStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:       data.ID,
		CourseID: data.CourseID,
		UserID:   data.UserID,
		Amount:   data.Amount.StringFixed(2),
		Currency: data.Currency,
		Status:   string(data.Status),
	}
}
