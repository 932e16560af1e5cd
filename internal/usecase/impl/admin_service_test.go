package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	vendorRepo   *mockRepo.MockVendorRepository
	goodsRepo    *mockRepo.MockGoodsRepository
	locationRepo *mockRepo.MockLocationRepository
	publisher    *mockSvc.MockEventPublisher
}

// newAdminServiceForTest wires the admin facade over real vendor and goods
// services so the moderation side effects are exercised end to end.
func newAdminServiceForTest(t *testing.T) (usecase.AdminUsecase, *adminServiceMocks) {
	t.Helper()

	m := &adminServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		goodsRepo:    mockRepo.NewMockGoodsRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Moderation: &config.ModerationConfig{StrictTransitions: true},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	vendorUsecase := NewVendorService(VendorServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		VendorRepo:     m.vendorRepo,
		UserRepo:       m.userRepo,
		LocationRepo:   m.locationRepo,
		EventPublisher: m.publisher,
		QRCodeService:  mockSvc.NewMockQRCodeService(t),
		Config:         cfg,
		Logger:         logger,
	})

	goodsUsecase := NewGoodsService(GoodsServiceParams{
		GoodsRepo:      m.goodsRepo,
		VendorRepo:     m.vendorRepo,
		EventPublisher: m.publisher,
		Config:         cfg,
		Logger:         logger,
	})

	service := NewAdminService(AdminServiceParams{
		UserRepo:      m.userRepo,
		VendorRepo:    m.vendorRepo,
		LocationRepo:  m.locationRepo,
		VendorUsecase: vendorUsecase,
		GoodsUsecase:  goodsUsecase,
		Logger:        logger,
	})

	return service, m
}

func TestAdminService_DashboardStats(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().Count(ctx).Return(120, nil)
	m.vendorRepo.EXPECT().Count(ctx).Return(30, nil)
	m.vendorRepo.EXPECT().CountByStatus(ctx, entity.VendorStatusPending).Return(4, nil)
	m.goodsRepo.EXPECT().Count(ctx).Return(200, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusPending).Return(15, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusApproved).Return(170, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusFlagged).Return(10, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusDropped).Return(5, nil)
	m.locationRepo.EXPECT().StateStats(ctx).Return([]entity.StateCount{
		{State: "Lagos", Count: 12},
		{State: "Kano", Count: 7},
	}, nil)

	stats, err := service.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(30), stats.TotalVendors)
	assert.Equal(t, int64(4), stats.PendingVendors)
	require.NotNil(t, stats.Goods)
	assert.Equal(t, int64(200), stats.Goods.Total)
	assert.Len(t, stats.StateStats, 2)
}

func TestAdminService_DashboardStats_PropagatesFailure(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().Count(ctx).Return(0, errors.New("connection refused"))
	m.vendorRepo.EXPECT().Count(ctx).Return(30, nil)
	m.vendorRepo.EXPECT().CountByStatus(ctx, entity.VendorStatusPending).Return(4, nil)
	m.goodsRepo.EXPECT().Count(ctx).Return(200, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, mock.AnythingOfType("entity.GoodsStatus")).Return(1, nil)
	m.locationRepo.EXPECT().StateStats(ctx).Return(nil, nil)

	stats, err := service.DashboardStats(ctx)
	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestAdminService_PendingVendors(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.vendorRepo.EXPECT().
		FindAll(ctx, repository.VendorFilter{
			Page:   constants.DefaultPage,
			Limit:  constants.DefaultLimit,
			Status: entity.VendorStatusPending,
		}).
		Return([]*entity.Vendor{{ID: uuid.New()}}, 1, nil)

	page, err := service.PendingVendors(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Vendors, 1)
}

func TestAdminService_PendingGoods(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.goodsRepo.EXPECT().
		FindAll(ctx, repository.GoodsFilter{
			Page:      2,
			Limit:     5,
			Status:    entity.GoodsStatusPending,
			SortBy:    constants.DefaultGoodsSort,
			SortOrder: constants.DefaultSortOrder,
		}).
		Return([]*entity.Goods{{ID: uuid.New()}}, 6, nil)

	page, err := service.PendingGoods(ctx, 2, 5)
	require.NoError(t, err)
	assert.Len(t, page.Goods, 1)
	assert.Equal(t, int64(2), page.Pages)
}

func TestAdminService_VerifyVendor(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()
	vendorID := uuid.New()
	adminID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusPending}, nil)

	m.vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	vendor, err := service.VerifyVendor(ctx, vendorID, adminID)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusVerified, vendor.Status)
	require.NotNil(t, vendor.VerifiedBy)
	assert.Equal(t, adminID, *vendor.VerifiedBy)
}

func TestAdminService_SuspendVendor(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()
	vendorID := uuid.New()
	adminID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusVerified}, nil)

	m.vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	vendor, err := service.SuspendVendor(ctx, vendorID, adminID, "fraud reports")
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusSuspended, vendor.Status)
	assert.Equal(t, "fraud reports", vendor.RejectionReason)
}

func TestAdminService_FlagGoods(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()
	goodsID := uuid.New()
	adminID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusApproved, IsAvailable: true}, nil)

	m.goodsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	goods, err := service.FlagGoods(ctx, goodsID, adminID, "misleading photos")
	require.NoError(t, err)
	assert.Equal(t, entity.GoodsStatusFlagged, goods.Status)
	assert.Equal(t, "misleading photos", goods.FlagReason)
	require.NotNil(t, goods.FlaggedBy)
	assert.Equal(t, adminID, *goods.FlaggedBy)
}

func TestAdminService_DropGoods(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()
	goodsID := uuid.New()
	adminID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusFlagged, IsAvailable: true}, nil)

	m.goodsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	goods, err := service.DropGoods(ctx, goodsID, adminID, "prohibited item")
	require.NoError(t, err)
	assert.Equal(t, entity.GoodsStatusDropped, goods.Status)
	assert.False(t, goods.IsAvailable)
}

func TestAdminService_ReconcileCounters(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().RecountVendors(ctx).Return(nil)
	m.vendorRepo.EXPECT().RecountGoods(ctx).Return(nil)

	err := service.ReconcileCounters(ctx)
	require.NoError(t, err)
}

func TestAdminService_ReconcileCounters_Failure(t *testing.T) {
	service, m := newAdminServiceForTest(t)

	ctx := context.Background()

	m.locationRepo.EXPECT().
		RecountVendors(ctx).
		Return(errors.New("lock timeout"))

	err := service.ReconcileCounters(ctx)
	require.Error(t, err)
}
