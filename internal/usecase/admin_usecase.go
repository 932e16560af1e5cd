package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// DashboardStats aggregates the headline numbers for the admin overview.
// The reads behind it are independent, there is no cross-entity snapshot.
type DashboardStats struct {
	TotalUsers     int64                  `json:"total_users"`
	TotalVendors   int64                  `json:"total_vendors"`
	PendingVendors int64                  `json:"pending_vendors"`
	Goods          *repository.GoodsStats `json:"goods"`
	StateStats     []entity.StateCount    `json:"state_stats"`
}

// AdminUsecase is the moderation facade. The convenience verbs delegate to
// the underlying UpdateStatus operations with a fixed target status.
type AdminUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)

	PendingVendors(ctx context.Context, page, limit int) (*VendorPage, error)
	PendingGoods(ctx context.Context, page, limit int) (*GoodsPage, error)

	VerifyVendor(ctx context.Context, id, adminID uuid.UUID) (*entity.Vendor, error)
	RejectVendor(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Vendor, error)
	SuspendVendor(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Vendor, error)

	ApproveGoods(ctx context.Context, id, adminID uuid.UUID) (*entity.Goods, error)
	FlagGoods(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Goods, error)
	DropGoods(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Goods, error)

	// ReconcileCounters recomputes the denormalized vendor and goods
	// counters from the live rows.
	ReconcileCounters(ctx context.Context) error
}
