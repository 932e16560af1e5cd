package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorHandlerForTest(t *testing.T) (*VendorHandler, *mockRepo.MockVendorRepository) {
	t.Helper()

	vendorRepo := mockRepo.NewMockVendorRepository(t)
	goodsRepo := mockRepo.NewMockGoodsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	vendorUC := impl.NewVendorService(impl.VendorServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		VendorRepo:     vendorRepo,
		UserRepo:       mockRepo.NewMockUserRepository(t),
		LocationRepo:   mockRepo.NewMockLocationRepository(t),
		EventPublisher: publisher,
		QRCodeService:  mockSvc.NewMockQRCodeService(t),
		Config:         cfg,
		Logger:         logger,
	})

	goodsUC := impl.NewGoodsService(impl.GoodsServiceParams{
		GoodsRepo:      goodsRepo,
		VendorRepo:     vendorRepo,
		EventPublisher: publisher,
		Config:         cfg,
		Logger:         logger,
	})

	handler := NewVendorHandler(VendorHandlerParams{
		VendorUC: vendorUC,
		GoodsUC:  goodsUC,
		Logger:   logger,
	})

	return handler, vendorRepo
}

func TestHealthCheck_Integration(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestVendorHandler_GetVendor_InvalidID_Integration(t *testing.T) {
	handler, _ := newVendorHandlerForTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vendors/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetVendor(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestVendorHandler_GetVendor_PublicHidesPending_Integration(t *testing.T) {
	handler, vendorRepo := newVendorHandlerForTest(t)

	vendorID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vendors/"+vendorID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(vendorID.String())

	vendorRepo.EXPECT().
		FindByID(req.Context(), vendorID).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusPending}, nil)

	err := handler.GetVendor(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VENDOR_NOT_FOUND")
}

func TestVendorHandler_GetVendor_Found_Integration(t *testing.T) {
	handler, vendorRepo := newVendorHandlerForTest(t)

	vendorID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vendors/"+vendorID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(vendorID.String())

	vendorRepo.EXPECT().
		FindByID(req.Context(), vendorID).
		Return(&entity.Vendor{
			ID:           vendorID,
			BusinessName: "Chidi Textiles",
			Status:       entity.VendorStatusVerified,
		}, nil)

	err := handler.GetVendor(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chidi Textiles")
}

func TestVendorHandler_MyVendor_NoProfile_Integration(t *testing.T) {
	handler, vendorRepo := newVendorHandlerForTest(t)

	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vendors/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	vendorRepo.EXPECT().
		FindByUserID(req.Context(), userID).
		Return(nil, repository.ErrVendorNotFound)

	err := handler.MyVendor(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VENDOR_NOT_FOUND")
}
