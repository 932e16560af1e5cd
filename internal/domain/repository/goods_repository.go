package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrGoodsNotFound is returned when a goods record does not exist.
var ErrGoodsNotFound = errors.New("goods not found")

// GoodsFilter narrows, sorts and paginates goods listings.
type GoodsFilter struct {
	Page      int
	Limit     int
	Status    entity.GoodsStatus
	Type      entity.GoodsType
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	VendorID  *uuid.UUID
	Condition string
	Brand     string
	SortBy    string
	SortOrder string
	// AvailableOnly forces isAvailable = true, used by the public visibility mode.
	AvailableOnly bool
}

// GoodsStats is the aggregate snapshot served to the moderation dashboard.
// The five counts come from independent queries; consistency is best-effort.
type GoodsStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Flagged  int64 `json:"flagged"`
	Dropped  int64 `json:"dropped"`
}

// GoodsRepository is the persistence contract for goods listings.
type GoodsRepository interface {
	Create(ctx context.Context, goods *entity.Goods) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goods, error)
	FindAll(ctx context.Context, filter GoodsFilter) ([]*entity.Goods, int64, error)
	Update(ctx context.Context, goods *entity.Goods) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementViews applies an atomic +1 to the view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	DistinctCategories(ctx context.Context, status entity.GoodsStatus) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.GoodsStatus) (int64, error)
}
