package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	vendorRepo   *mockRepo.MockVendorRepository
	userRepo     *mockRepo.MockUserRepository
	locationRepo *mockRepo.MockLocationRepository
	publisher    *mockSvc.MockEventPublisher
	qrcode       *mockSvc.MockQRCodeService
}

func newVendorServiceForTest(t *testing.T, strict bool) (usecase.VendorUsecase, *vendorServiceMocks) {
	t.Helper()

	m := &vendorServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
	}

	service := NewVendorService(VendorServiceParams{
		TxManager:      m.txManager,
		VendorRepo:     m.vendorRepo,
		UserRepo:       m.userRepo,
		LocationRepo:   m.locationRepo,
		EventPublisher: m.publisher,
		QRCodeService:  m.qrcode,
		Config: &config.Config{
			Moderation: &config.ModerationConfig{StrictTransitions: strict},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, m
}

func TestVendorService_Create_OnlineOnly(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	m.vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleVendor).
		Return(nil)

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Mama Nkechi Provisions",
		VendorType:   entity.VendorTypeOnlineOnly.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, userID, vendor.UserID)
	assert.Equal(t, entity.VendorStatusPending, vendor.Status)
	assert.Equal(t, entity.VendorTypeOnlineOnly, vendor.VendorType)
	assert.True(t, vendor.IsOpen)
	assert.Nil(t, vendor.Placement.LocationID)
}

func TestVendorService_Create_MarketBasedInheritsLocationPoint(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	m.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{
			ID:    locationID,
			Name:  "Balogun Market",
			State: "Lagos",
			Point: orb.Point{3.3792, 6.4550},
		}, nil)

	m.vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleVendor).
		Return(nil)

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, locationID, 1).
		Return(nil)

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Chidi Textiles",
		VendorType:   entity.VendorTypeMarketBased.String(),
		Placement: usecase.PlacementInput{
			LocationID: &locationID,
			ShopNumber: "B12",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, vendor.Placement.Point)
	assert.Equal(t, orb.Point{3.3792, 6.4550}, *vendor.Placement.Point)
	assert.Equal(t, "B12", vendor.Placement.ShopNumber)
}

func TestVendorService_Create_DuplicateProfile(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Vendor{ID: uuid.New(), UserID: userID}, nil)

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Second Shop",
		VendorType:   entity.VendorTypeOnlineOnly.String(),
	})
	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorExists)
}

func TestVendorService_Create_UnknownVendorType(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Nowhere Shop",
		VendorType:   "floating",
	})
	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_Create_MarketBasedWithoutLocation(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Stallless",
		VendorType:   entity.VendorTypeMarketBased.String(),
	})
	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_FindOne_PublicHidesPending(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusPending}, nil)

	vendor, err := service.FindOne(ctx, vendorID, true)
	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_FindByUser_NoProfile(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	vendor, err := service.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, vendor)
}

func TestVendorService_FindAll_PublicOnlyForcesVerified(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()

	m.vendorRepo.EXPECT().
		FindAll(ctx, repository.VendorFilter{
			Page:   constants.DefaultPage,
			Limit:  constants.MaxLimit,
			Status: entity.VendorStatusVerified,
		}).
		Return([]*entity.Vendor{{ID: uuid.New()}}, 1, nil)

	page, err := service.FindAll(ctx, &usecase.VendorQuery{
		Page:       0,
		Limit:      500,
		Status:     entity.VendorStatusPending.String(),
		PublicOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, page.Vendors, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(1), page.Pages)
}

func TestVendorService_FindNearby_DefaultRadius(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	point := orb.Point{7.4898, 9.0643}

	m.vendorRepo.EXPECT().
		FindNearby(ctx, point, constants.DefaultRadiusKm, entity.VendorStatusVerified).
		Return([]*entity.Vendor{}, nil)

	vendors, err := service.FindNearby(ctx, point[0], point[1], 0)
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestVendorService_Update_LocationSwapMovesCounters(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	oldLocationID := uuid.New()
	newLocationID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{
			ID:         vendorID,
			UserID:     userID,
			VendorType: entity.VendorTypeMarketBased,
			Placement:  entity.Placement{LocationID: &oldLocationID},
			Status:     entity.VendorStatusVerified,
		}, nil)

	m.locationRepo.EXPECT().
		FindByID(ctx, newLocationID).
		Return(&entity.Location{ID: newLocationID, Point: orb.Point{3.35, 6.6}}, nil)

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, oldLocationID, -1).
		Return(nil)

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, newLocationID, 1).
		Return(nil)

	m.vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	vendor, err := service.Update(ctx, vendorID, userID, false, &usecase.UpdateVendorInput{
		Placement: &usecase.PlacementInput{LocationID: &newLocationID},
	})
	require.NoError(t, err)
	require.NotNil(t, vendor.Placement.LocationID)
	assert.Equal(t, newLocationID, *vendor.Placement.LocationID)
}

func TestVendorService_Update_NotOwner(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, UserID: uuid.New()}, nil)

	name := "Hijacked"
	vendor, err := service.Update(ctx, vendorID, uuid.New(), false, &usecase.UpdateVendorInput{
		BusinessName: &name,
	})
	require.Error(t, err)
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrNotVendorOwner)
}

func TestVendorService_UpdateStatus_Verify(t *testing.T) {
	service, m := newVendorServiceForTest(t, true)

	ctx := context.Background()
	vendorID := uuid.New()
	adminID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{
			ID:              vendorID,
			Status:          entity.VendorStatusPending,
			RejectionReason: "stale reason",
		}, nil)

	m.vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	vendor, err := service.UpdateStatus(ctx, vendorID, adminID, &usecase.UpdateVendorStatusInput{
		Status: entity.VendorStatusVerified.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusVerified, vendor.Status)
	require.NotNil(t, vendor.VerifiedAt)
	require.NotNil(t, vendor.VerifiedBy)
	assert.Equal(t, adminID, *vendor.VerifiedBy)
	assert.Empty(t, vendor.RejectionReason)
}

func TestVendorService_UpdateStatus_RejectKeepsReason(t *testing.T) {
	service, m := newVendorServiceForTest(t, true)

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

	vendor, err := service.UpdateStatus(ctx, vendorID, adminID, &usecase.UpdateVendorStatusInput{
		Status:          entity.VendorStatusRejected.String(),
		RejectionReason: "incomplete documents",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusRejected, vendor.Status)
	assert.Equal(t, "incomplete documents", vendor.RejectionReason)
	assert.Nil(t, vendor.VerifiedAt)
}

func TestVendorService_UpdateStatus_StrictBlocksRejectedToVerified(t *testing.T) {
	service, m := newVendorServiceForTest(t, true)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusRejected}, nil)

	vendor, err := service.UpdateStatus(ctx, vendorID, uuid.New(), &usecase.UpdateVendorStatusInput{
		Status: entity.VendorStatusVerified.String(),
	})
	require.Error(t, err)
	assert.Nil(t, vendor)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestVendorService_UpdateStatus_PermissiveAllowsOverride(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()
	adminID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusRejected}, nil)

	m.vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	vendor, err := service.UpdateStatus(ctx, vendorID, adminID, &usecase.UpdateVendorStatusInput{
		Status: entity.VendorStatusVerified.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusVerified, vendor.Status)
}

func TestVendorService_Remove_ByOwner(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	locationID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{
			ID:        vendorID,
			UserID:    userID,
			Placement: entity.Placement{LocationID: &locationID},
		}, nil)

	m.vendorRepo.EXPECT().
		Delete(ctx, vendorID).
		Return(nil)

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, locationID, -1).
		Return(nil)

	m.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleUser).
		Return(nil)

	err := service.Remove(ctx, vendorID, userID, false)
	require.NoError(t, err)
}

func TestVendorService_Remove_CounterFailureSurfaces(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	locationID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{
			ID:        vendorID,
			UserID:    userID,
			Placement: entity.Placement{LocationID: &locationID},
		}, nil)

	m.vendorRepo.EXPECT().
		Delete(ctx, vendorID).
		Return(nil)

	m.locationRepo.EXPECT().
		IncrementVendorCount(ctx, locationID, -1).
		Return(errors.New("connection reset"))

	err := service.Remove(ctx, vendorID, userID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrement location vendor count")
}

func TestVendorService_Remove_DemotionFailureSurfaces(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, UserID: userID}, nil)

	m.vendorRepo.EXPECT().
		Delete(ctx, vendorID).
		Return(nil)

	m.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleUser).
		Return(errors.New("connection reset"))

	err := service.Remove(ctx, vendorID, userID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to demote user role after vendor removal")
}

func TestVendorService_Remove_NotOwner(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, UserID: uuid.New()}, nil)

	err := service.Remove(ctx, vendorID, uuid.New(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotVendorOwner)
}

func TestVendorService_Categories_PublicOnly(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()

	m.vendorRepo.EXPECT().
		DistinctCategories(ctx, entity.VendorStatusVerified).
		Return([]string{"electronics", "fashion"}, nil)

	categories, err := service.Categories(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "fashion"}, categories)
}

func TestVendorService_QRCode(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusVerified}, nil)

	m.qrcode.EXPECT().
		GenerateVendorQR(vendorID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.QRCode(ctx, vendorID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestVendorService_QRCode_UnknownVendor(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	vendorID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(nil, repository.ErrVendorNotFound)

	png, err := service.QRCode(ctx, vendorID)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_Create_RepositoryFailure(t *testing.T) {
	service, m := newVendorServiceForTest(t, false)

	ctx := context.Background()
	userID := uuid.New()

	m.vendorRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	m.vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(errors.New("connection reset"))

	vendor, err := service.Create(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Flaky Shop",
		VendorType:   entity.VendorTypeOnlineOnly.String(),
	})
	require.Error(t, err)
	assert.Nil(t, vendor)
}
