package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
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

type goodsServiceMocks struct {
	goodsRepo  *mockRepo.MockGoodsRepository
	vendorRepo *mockRepo.MockVendorRepository
	publisher  *mockSvc.MockEventPublisher
}

func newGoodsServiceForTest(t *testing.T, strict bool) (usecase.GoodsUsecase, *goodsServiceMocks) {
	t.Helper()

	m := &goodsServiceMocks{
		goodsRepo:  mockRepo.NewMockGoodsRepository(t),
		vendorRepo: mockRepo.NewMockVendorRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	service := NewGoodsService(GoodsServiceParams{
		GoodsRepo:      m.goodsRepo,
		VendorRepo:     m.vendorRepo,
		EventPublisher: m.publisher,
		Config: &config.Config{
			Moderation: &config.ModerationConfig{StrictTransitions: strict},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, m
}

func TestGoodsService_Create_VerifiedVendor(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: vendorID, UserID: userID, Status: entity.VendorStatusVerified}, nil)

	m.goodsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	m.vendorRepo.EXPECT().
		IncrementGoodsCount(ctx, vendorID, 1).
		Return(nil)

	goods, err := service.Create(ctx, userID, &usecase.CreateGoodsInput{
		Title: "Ankara fabric, 6 yards",
		Price: 7500,
		Type:  entity.GoodsTypeProduct.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, goods)
	assert.Equal(t, entity.GoodsStatusPending, goods.Status)
	assert.Equal(t, vendorID, goods.VendorID)
	assert.Equal(t, userID, goods.CreatedBy)
	assert.True(t, goods.IsAvailable)
}

func TestGoodsService_Create_CounterFailureSurfaces(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: vendorID, UserID: userID, Status: entity.VendorStatusVerified}, nil)

	m.goodsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	m.vendorRepo.EXPECT().
		IncrementGoodsCount(ctx, vendorID, 1).
		Return(errors.New("connection reset"))

	goods, err := service.Create(ctx, userID, &usecase.CreateGoodsInput{
		Title: "Aso oke gele",
		Price: 4500,
		Type:  entity.GoodsTypeProduct.String(),
	})
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.Contains(t, err.Error(), "failed to increment vendor goods count")
}

func TestGoodsService_Create_PendingVendorRejected(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: uuid.New(), UserID: userID, Status: entity.VendorStatusPending}, nil)

	goods, err := service.Create(ctx, userID, &usecase.CreateGoodsInput{
		Title: "Too early",
		Price: 100,
		Type:  entity.GoodsTypeProduct.String(),
	})
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotVerified)
}

func TestGoodsService_Create_NoVendorProfile(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	goods, err := service.Create(ctx, userID, &usecase.CreateGoodsInput{
		Title: "No shop yet",
		Price: 100,
		Type:  entity.GoodsTypeProduct.String(),
	})
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrNotVendor)
}

func TestGoodsService_Create_UnknownType(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: uuid.New(), UserID: userID, Status: entity.VendorStatusVerified}, nil)

	goods, err := service.Create(ctx, userID, &usecase.CreateGoodsInput{
		Title: "Mystery",
		Price: 100,
		Type:  "antimatter",
	})
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGoodsService_FindAll_PublicOnlyForcesApprovedAvailable(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()

	m.goodsRepo.EXPECT().
		FindAll(ctx, repository.GoodsFilter{
			Page:          constants.DefaultPage,
			Limit:         constants.DefaultLimit,
			Status:        entity.GoodsStatusApproved,
			SortBy:        constants.DefaultGoodsSort,
			SortOrder:     constants.DefaultSortOrder,
			AvailableOnly: true,
		}).
		Return([]*entity.Goods{{ID: uuid.New()}, {ID: uuid.New()}}, 12, nil)

	page, err := service.FindAll(ctx, &usecase.GoodsQuery{
		Status:     entity.GoodsStatusFlagged.String(),
		PublicOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, page.Goods, 2)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, int64(2), page.Pages)
}

func TestGoodsService_FindByVendor_ScopesQuery(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.goodsRepo.EXPECT().
		FindAll(ctx, repository.GoodsFilter{
			Page:      constants.DefaultPage,
			Limit:     constants.DefaultLimit,
			VendorID:  &vendorID,
			SortBy:    constants.DefaultGoodsSort,
			SortOrder: constants.DefaultSortOrder,
		}).
		Return([]*entity.Goods{}, 0, nil)

	page, err := service.FindByVendor(ctx, vendorID, &usecase.GoodsQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Goods)
}

func TestGoodsService_FindByOwner_ShowsUnapproved(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: vendorID, UserID: userID, Status: entity.VendorStatusVerified}, nil)

	m.goodsRepo.EXPECT().
		FindAll(ctx, repository.GoodsFilter{
			Page:      constants.DefaultPage,
			Limit:     constants.DefaultLimit,
			VendorID:  &vendorID,
			SortBy:    constants.DefaultGoodsSort,
			SortOrder: constants.DefaultSortOrder,
		}).
		Return([]*entity.Goods{
			{ID: uuid.New(), VendorID: vendorID, Status: entity.GoodsStatusPending},
			{ID: uuid.New(), VendorID: vendorID, Status: entity.GoodsStatusFlagged},
		}, 2, nil)

	page, err := service.FindByOwner(ctx, userID, &usecase.GoodsQuery{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Goods, 2)
	assert.Equal(t, entity.GoodsStatusPending, page.Goods[0].Status)
	assert.Equal(t, entity.GoodsStatusFlagged, page.Goods[1].Status)
}

func TestGoodsService_FindByOwner_NoProfile(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	page, err := service.FindByOwner(ctx, userID, &usecase.GoodsQuery{})
	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrNotVendor)
}

func TestGoodsService_FindOne_PublicHidesPending(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusPending, IsAvailable: true}, nil)

	goods, err := service.FindOne(ctx, goodsID, true, false)
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrGoodsNotFound)
}

func TestGoodsService_FindOne_PublicHidesUnavailable(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusApproved, IsAvailable: false}, nil)

	goods, err := service.FindOne(ctx, goodsID, true, false)
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrGoodsNotFound)
}

func TestGoodsService_FindOne_CountsView(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusApproved, IsAvailable: true, Views: 41}, nil)

	m.goodsRepo.EXPECT().
		IncrementViews(ctx, goodsID).
		Return(nil)

	goods, err := service.FindOne(ctx, goodsID, true, true)
	require.NoError(t, err)
	assert.Equal(t, int64(42), goods.Views)
}

func TestGoodsService_FindOne_ViewBumpFailureDoesNotFailRead(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusApproved, IsAvailable: true, Views: 41}, nil)

	m.goodsRepo.EXPECT().
		IncrementViews(ctx, goodsID).
		Return(errors.New("deadlock detected"))

	goods, err := service.FindOne(ctx, goodsID, true, true)
	require.NoError(t, err)
	assert.Equal(t, int64(41), goods.Views)
}

func TestGoodsService_Update_NotOwner(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, CreatedBy: uuid.New()}, nil)

	title := "Not yours"
	goods, err := service.Update(ctx, goodsID, uuid.New(), false, &usecase.UpdateGoodsInput{Title: &title})
	require.Error(t, err)
	assert.Nil(t, goods)
	assert.ErrorIs(t, err, domainerrors.ErrNotGoodsOwner)
}

func TestGoodsService_Update_AdminBypassesOwnership(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, CreatedBy: uuid.New(), Price: 500}, nil)

	m.goodsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	price := 750.0
	goods, err := service.Update(ctx, goodsID, uuid.New(), true, &usecase.UpdateGoodsInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 750.0, goods.Price)
}

func TestGoodsService_UpdateStatus_ApproveClearsFlagMetadata(t *testing.T) {
	service, m := newGoodsServiceForTest(t, true)

	ctx := context.Background()
	goodsID := uuid.New()
	adminID := uuid.New()
	flaggedBy := uuid.New()
	flaggedAt := time.Now().Add(-time.Hour)

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{
			ID:         goodsID,
			Status:     entity.GoodsStatusFlagged,
			FlagReason: "suspicious pricing",
			FlaggedBy:  &flaggedBy,
			FlaggedAt:  &flaggedAt,
		}, nil)

	m.goodsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Goods")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	goods, err := service.UpdateStatus(ctx, goodsID, adminID, &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusApproved.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GoodsStatusApproved, goods.Status)
	assert.Empty(t, goods.FlagReason)
	assert.Nil(t, goods.FlaggedBy)
	assert.Nil(t, goods.FlaggedAt)
	require.NotNil(t, goods.ApprovedAt)
	require.NotNil(t, goods.ApprovedBy)
	assert.Equal(t, adminID, *goods.ApprovedBy)
}

func TestGoodsService_UpdateStatus_DropForcesUnavailable(t *testing.T) {
	service, m := newGoodsServiceForTest(t, true)

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

	goods, err := service.UpdateStatus(ctx, goodsID, adminID, &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusDropped.String(),
		Reason: "counterfeit listing",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GoodsStatusDropped, goods.Status)
	assert.False(t, goods.IsAvailable)
	assert.Equal(t, "counterfeit listing", goods.FlagReason)
}

func TestGoodsService_UpdateStatus_StrictBlocksDroppedToApproved(t *testing.T) {
	service, m := newGoodsServiceForTest(t, true)

	ctx := context.Background()
	goodsID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, Status: entity.GoodsStatusDropped}, nil)

	goods, err := service.UpdateStatus(ctx, goodsID, uuid.New(), &usecase.UpdateGoodsStatusInput{
		Status: entity.GoodsStatusApproved.String(),
	})
	require.Error(t, err)
	assert.Nil(t, goods)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestGoodsService_Remove_OwnerDecrementsCounter(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	goodsID := uuid.New()
	vendorID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, VendorID: vendorID, CreatedBy: userID}, nil)

	m.goodsRepo.EXPECT().
		Delete(ctx, goodsID).
		Return(nil)

	m.vendorRepo.EXPECT().
		IncrementGoodsCount(ctx, vendorID, -1).
		Return(nil)

	err := service.Remove(ctx, goodsID, userID, false)
	require.NoError(t, err)
}

func TestGoodsService_Remove_CounterFailureSurfaces(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	goodsID := uuid.New()
	vendorID := uuid.New()

	m.goodsRepo.EXPECT().
		FindByID(ctx, goodsID).
		Return(&entity.Goods{ID: goodsID, VendorID: vendorID, CreatedBy: userID}, nil)

	m.goodsRepo.EXPECT().
		Delete(ctx, goodsID).
		Return(nil)

	m.vendorRepo.EXPECT().
		IncrementGoodsCount(ctx, vendorID, -1).
		Return(errors.New("connection reset"))

	err := service.Remove(ctx, goodsID, userID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrement vendor goods count")
}

func TestGoodsService_Categories_PublicOnly(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()

	m.goodsRepo.EXPECT().
		DistinctCategories(ctx, entity.GoodsStatusApproved).
		Return([]string{"food", "phones"}, nil)

	categories, err := service.Categories(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "phones"}, categories)
}

func TestGoodsService_Stats(t *testing.T) {
	service, m := newGoodsServiceForTest(t, false)

	ctx := context.Background()

	m.goodsRepo.EXPECT().Count(ctx).Return(50, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusPending).Return(7, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusApproved).Return(40, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusFlagged).Return(2, nil)
	m.goodsRepo.EXPECT().CountByStatus(ctx, entity.GoodsStatusDropped).Return(1, nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), stats.Total)
	assert.Equal(t, int64(7), stats.Pending)
	assert.Equal(t, int64(40), stats.Approved)
	assert.Equal(t, int64(2), stats.Flagged)
	assert.Equal(t, int64(1), stats.Dropped)
}
