package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus is the payment lifecycle state of a purchase.
type PurchaseStatus string

const (
	// PurchaseStatusPending is set when the purchase row is created, before
	// the payment provider is contacted.
	PurchaseStatusPending PurchaseStatus = "pending"
	// PurchaseStatusCompleted is the successful terminal state.
	PurchaseStatusCompleted PurchaseStatus = "completed"
	// PurchaseStatusFailed is the unsuccessful terminal state.
	PurchaseStatusFailed PurchaseStatus = "failed"
)

// Terminal reports whether the status can no longer change.
func (s PurchaseStatus) Terminal() bool {
	return s == PurchaseStatusCompleted || s == PurchaseStatusFailed
}

// Purchase is the sole source of truth for payment amount and status.
// Amount is fixed at creation time from the course's effective price and is
// immutable afterwards; Status moves pending -> exactly one terminal state.
type Purchase struct {
	ID        uuid.UUID       `json:"id"`
	CourseID  uuid.UUID       `json:"course_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`   // Two-decimal-place amount in major currency units.
	Currency  string          `json:"currency"` // Lowercase ISO code, validated against the whitelist.
	Status    PurchaseStatus  `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MinorUnits returns the amount expressed in the currency's minor units
// (amount * 100 rounded to an integer), as sent to the payment provider.
func (p *Purchase) MinorUnits() int64 {
	return p.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
