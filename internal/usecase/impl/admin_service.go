package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. It is a thin facade:
// the moderation verbs delegate to the vendor and goods usecases so the
// side-effect rules live in one place.
type adminService struct {
	userRepo      repository.UserRepository
	vendorRepo    repository.VendorRepository
	locationRepo  repository.LocationRepository
	vendorUsecase usecase.VendorUsecase
	goodsUsecase  usecase.GoodsUsecase
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	VendorRepo    repository.VendorRepository
	LocationRepo  repository.LocationRepository
	VendorUsecase usecase.VendorUsecase
	GoodsUsecase  usecase.GoodsUsecase
	Logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:      params.UserRepo,
		vendorRepo:    params.VendorRepo,
		locationRepo:  params.LocationRepo,
		vendorUsecase: params.VendorUsecase,
		goodsUsecase:  params.GoodsUsecase,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardStats fans the independent aggregate reads out concurrently.
// There is no cross-entity transaction; the snapshot is best-effort.
func (srv *adminService) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		total, err := srv.userRepo.Count(ctx)
		if err != nil {
			errs[0] = errors.Wrap(err, "failed to count users")

			return
		}
		stats.TotalUsers = total
	}()
	go func() {
		defer wg.Done()
		total, pending, err := srv.countVendors(ctx)
		if err != nil {
			errs[1] = err

			return
		}
		stats.TotalVendors = total
		stats.PendingVendors = pending
	}()
	go func() {
		defer wg.Done()
		goodsStats, err := srv.goodsUsecase.Stats(ctx)
		if err != nil {
			errs[2] = errors.Wrap(err, "failed to aggregate goods stats")

			return
		}
		stats.Goods = goodsStats
	}()
	go func() {
		defer wg.Done()
		stateStats, err := srv.locationRepo.StateStats(ctx)
		if err != nil {
			errs[3] = errors.Wrap(err, "failed to aggregate state stats")

			return
		}
		stats.StateStats = stateStats
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			srv.log(ctx).Error("Failed to build dashboard stats", slog.Any("error", err))

			return nil, err
		}
	}

	return stats, nil
}

func (srv *adminService) countVendors(ctx context.Context) (total, pending int64, err error) {
	total, err = srv.vendorRepo.Count(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to count vendors")
	}

	pending, err = srv.vendorRepo.CountByStatus(ctx, entity.VendorStatusPending)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to count pending vendors")
	}

	return total, pending, nil
}

func (srv *adminService) PendingVendors(ctx context.Context, page, limit int) (*usecase.VendorPage, error) {
	return srv.vendorUsecase.FindAll(ctx, &usecase.VendorQuery{
		Page:   page,
		Limit:  limit,
		Status: entity.VendorStatusPending.String(),
	})
}

func (srv *adminService) PendingGoods(ctx context.Context, page, limit int) (*usecase.GoodsPage, error) {
	return srv.goodsUsecase.FindAll(ctx, &usecase.GoodsQuery{
		Page:   page,
		Limit:  limit,
		Status: entity.GoodsStatusPending.String(),
	})
}

func (srv *adminService) VerifyVendor(ctx context.Context, id, adminID uuid.UUID) (*entity.Vendor, error) {
	return srv.vendorUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateVendorStatusInput{
		Status: entity.VendorStatusVerified.String(),
	})
}

func (srv *adminService) RejectVendor(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Vendor, error) {
	return srv.vendorUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateVendorStatusInput{
		Status:          entity.VendorStatusRejected.String(),
		RejectionReason: reason,
	})
}

func (srv *adminService) SuspendVendor(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Vendor, error) {
	return srv.vendorUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateVendorStatusInput{
		Status:          entity.VendorStatusSuspended.String(),
		RejectionReason: reason,
	})
}

func (srv *adminService) ApproveGoods(ctx context.Context, id, adminID uuid.UUID) (*entity.Goods, error) {
	return srv.goodsUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusApproved.String(),
	})
}

func (srv *adminService) FlagGoods(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Goods, error) {
	return srv.goodsUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusFlagged.String(),
		Reason: reason,
	})
}

func (srv *adminService) DropGoods(ctx context.Context, id, adminID uuid.UUID, reason string) (*entity.Goods, error) {
	return srv.goodsUsecase.UpdateStatus(ctx, id, adminID, &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusDropped.String(),
		Reason: reason,
	})
}

// ReconcileCounters recomputes the denormalized vendor and goods counters
// from the live rows. Operator-triggered; the atomic increments keep the
// counters close, this closes any drift.
func (srv *adminService) ReconcileCounters(ctx context.Context) error {
	if err := srv.locationRepo.RecountVendors(ctx); err != nil {
		srv.log(ctx).Error("Failed to recount location vendors", slog.Any("error", err))

		return errors.Wrap(err, "failed to recount location vendors")
	}

	if err := srv.vendorRepo.RecountGoods(ctx); err != nil {
		srv.log(ctx).Error("Failed to recount vendor goods", slog.Any("error", err))

		return errors.Wrap(err, "failed to recount vendor goods")
	}

	srv.log(ctx).Info("Denormalized counters reconciled")

	return nil
}
