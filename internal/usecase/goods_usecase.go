package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateGoodsInput carries the fields for listing a new item.
type CreateGoodsInput struct {
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description,omitempty"`
	Price          float64        `json:"price" validate:"gte=0"`
	Type           string         `json:"type" validate:"required"`
	Category       string         `json:"category,omitempty"`
	Images         []string       `json:"images,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Condition      string         `json:"condition,omitempty"`
	Brand          string         `json:"brand,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
}

// UpdateGoodsInput carries a partial patch; nil fields are untouched.
type UpdateGoodsInput struct {
	Title          *string        `json:"title,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Price          *float64       `json:"price,omitempty"`
	Category       *string        `json:"category,omitempty"`
	Images         []string       `json:"images,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	IsAvailable    *bool          `json:"is_available,omitempty"`
	Condition      *string        `json:"condition,omitempty"`
	Brand          *string        `json:"brand,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
}

// UpdateGoodsStatusInput drives the goods moderation state machine.
type UpdateGoodsStatusInput struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

// GoodsQuery carries the listing filters accepted by FindAll.
type GoodsQuery struct {
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
	Status    string     `json:"status,omitempty"`
	Type      string     `json:"type,omitempty"`
	Category  string     `json:"category,omitempty"`
	Search    string     `json:"search,omitempty"`
	MinPrice  *float64   `json:"min_price,omitempty"`
	MaxPrice  *float64   `json:"max_price,omitempty"`
	VendorID  *uuid.UUID `json:"vendor_id,omitempty"`
	Condition string     `json:"condition,omitempty"`
	Brand     string     `json:"brand,omitempty"`
	SortBy    string     `json:"sort_by,omitempty"`
	SortOrder string     `json:"sort_order,omitempty"`
	// PublicOnly forces status=approved and is_available=true regardless
	// of what the query asked for. Set by unauthenticated routes.
	PublicOnly bool `json:"-"`
}

// GoodsPage is one page of a goods listing.
type GoodsPage struct {
	Goods []*entity.Goods `json:"goods"`
	Total int64           `json:"total"`
	Pages int64           `json:"pages"`
}

// GoodsUsecase defines the goods lifecycle operations.
type GoodsUsecase interface {
	// Create lists a new item under the caller's vendor profile. The
	// caller must own a verified vendor profile.
	Create(ctx context.Context, userID uuid.UUID, input *CreateGoodsInput) (*entity.Goods, error)
	FindAll(ctx context.Context, query *GoodsQuery) (*GoodsPage, error)
	// FindOne fetches one item; countView bumps the view counter without
	// failing the read when the bump cannot be recorded.
	FindOne(ctx context.Context, id uuid.UUID, publicOnly, countView bool) (*entity.Goods, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, query *GoodsQuery) (*GoodsPage, error)
	// FindByOwner lists the caller's own goods in any status, so vendors can
	// see their pending and flagged items.
	FindByOwner(ctx context.Context, userID uuid.UUID, query *GoodsQuery) (*GoodsPage, error)
	Update(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, input *UpdateGoodsInput) (*entity.Goods, error)
	// UpdateStatus moves the item through the moderation state machine and
	// publishes a moderation event on success.
	UpdateStatus(ctx context.Context, id, adminID uuid.UUID, input *UpdateGoodsStatusInput) (*entity.Goods, error)
	Remove(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error
	Categories(ctx context.Context, publicOnly bool) ([]string, error)
	Stats(ctx context.Context) (*repository.GoodsStats, error)
}
