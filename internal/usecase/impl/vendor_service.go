package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager         repository.TransactionManager
	vendorRepo        repository.VendorRepository
	userRepo          repository.UserRepository
	locationRepo      repository.LocationRepository
	eventPublisher    service.EventPublisher
	qrcodeService     service.QRCodeService
	strictTransitions bool
	logger            *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	VendorRepo     repository.VendorRepository
	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	strict := false
	if params.Config != nil && params.Config.Moderation != nil {
		strict = params.Config.Moderation.StrictTransitions
	}

	return &vendorService{
		txManager:         params.TxManager,
		vendorRepo:        params.VendorRepo,
		userRepo:          params.UserRepo,
		locationRepo:      params.LocationRepo,
		eventPublisher:    params.EventPublisher,
		qrcodeService:     params.QRCodeService,
		strictTransitions: strict,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a vendor profile for the user. The profile starts pending,
// the user is promoted to the vendor role and, when the vendor is placed
// inside a registered location, that location's counter is incremented.
func (srv *vendorService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	srv.log(ctx).Info("Creating vendor profile", slog.Any("userID", userID), slog.String("businessName", input.BusinessName))

	existing, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, errors.Wrap(err, "failed to check existing vendor profile")
	}
	if existing != nil {
		return nil, domainerrors.ErrVendorExists
	}

	vendorType := entity.VendorType(input.VendorType)
	if !vendorType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vendor type: " + input.VendorType)
	}

	placement, err := srv.resolvePlacement(ctx, vendorType, &input.Placement)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:                  uuid.New(),
		UserID:              userID,
		BusinessName:        input.BusinessName,
		BusinessDescription: input.BusinessDescription,
		VendorType:          vendorType,
		Placement:           *placement,
		BusinessPhone:       input.BusinessPhone,
		BusinessEmail:       input.BusinessEmail,
		Logo:                input.Logo,
		Documents:           input.Documents,
		Images:              input.Images,
		Categories:          input.Categories,
		WhatsappNumber:      input.WhatsappNumber,
		InstagramHandle:     input.InstagramHandle,
		FacebookPage:        input.FacebookPage,
		IsOpen:              true,
		OpeningHours:        input.OpeningHours,
		Status:              entity.VendorStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := srv.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendor) {
			return nil, domainerrors.ErrVendorExists
		}
		srv.log(ctx).Error("Failed to create vendor", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vendor")
	}

	// A failed role promotion or counter bump after the profile is persisted
	// still fails the call; ReconcileCounters repairs any drift.
	if err := srv.userRepo.UpdateRole(ctx, userID, entity.RoleVendor); err != nil {
		srv.log(ctx).Error("Failed to promote user to vendor role", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to promote user to vendor role")
	}

	if vendor.Placement.LocationID != nil {
		if err := srv.locationRepo.IncrementVendorCount(ctx, *vendor.Placement.LocationID, 1); err != nil {
			srv.log(ctx).Error("Failed to increment location vendor count", slog.Any("locationID", *vendor.Placement.LocationID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to increment location vendor count")
		}
	}

	srv.log(ctx).Debug("Vendor profile created", slog.Any("vendorID", vendor.ID))

	return vendor, nil
}

// resolvePlacement validates the type-dependent placement rules and, for
// location-based vendors, resolves the referenced location and copies its
// coordinates onto the vendor.
func (srv *vendorService) resolvePlacement(ctx context.Context, vendorType entity.VendorType, input *usecase.PlacementInput) (*entity.Placement, error) {
	placement := &entity.Placement{
		LocationID:  input.LocationID,
		ShopNumber:  input.ShopNumber,
		ShopFloor:   input.ShopFloor,
		ShopBlock:   input.ShopBlock,
		HomeAddress: input.HomeAddress,
		HomeState:   input.HomeState,
		HomeLga:     input.HomeLga,
		HomeArea:    input.HomeArea,
	}
	if input.Coordinates != nil {
		point := orb.Point{input.Coordinates.Longitude, input.Coordinates.Latitude}
		placement.Point = &point
	}

	if err := entity.ValidatePlacement(vendorType, *placement); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if vendorType.RequiresLocation() {
		location, err := srv.locationRepo.FindByID(ctx, *placement.LocationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return nil, domainerrors.ErrLocationNotFound
			}

			return nil, errors.Wrap(err, "failed to resolve placement location")
		}
		// Inherit coordinates from the location unless the caller supplied
		// their own shop coordinates.
		if placement.Point == nil {
			point := location.Point
			placement.Point = &point
		}
	}

	return placement, nil
}

func (srv *vendorService) FindAll(ctx context.Context, query *usecase.VendorQuery) (*usecase.VendorPage, error) {
	page, limit := normalizePagination(query.Page, query.Limit, constants.DefaultLimit)

	status := entity.VendorStatus(query.Status)
	if query.PublicOnly {
		status = entity.VendorStatusVerified
	}

	filter := repository.VendorFilter{
		Page:       page,
		Limit:      limit,
		Status:     status,
		VendorType: entity.VendorType(query.VendorType),
		LocationID: query.LocationID,
		State:      query.State,
		Lga:        query.Lga,
		Area:       query.Area,
		Search:     query.Search,
		Category:   query.Category,
		IsOpen:     query.IsOpen,
	}
	if query.Latitude != nil && query.Longitude != nil {
		radius := query.RadiusKm
		if radius <= 0 {
			radius = constants.DefaultRadiusKm
		}
		filter.Near = &repository.GeoFilter{
			Point:    orb.Point{*query.Longitude, *query.Latitude},
			RadiusKm: radius,
		}
	}

	vendors, total, err := srv.vendorRepo.FindAll(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list vendors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return &usecase.VendorPage{
		Vendors: vendors,
		Total:   total,
		Pages:   totalPages(total, limit),
	}, nil
}

func (srv *vendorService) FindOne(ctx context.Context, id uuid.UUID, publicOnly bool) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	if publicOnly && vendor.Status != entity.VendorStatusVerified {
		return nil, domainerrors.ErrVendorNotFound
	}

	return vendor, nil
}

// FindByUser returns nil without an error when the user has no profile.
func (srv *vendorService) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	return vendor, nil
}

func (srv *vendorService) FindByLocation(ctx context.Context, locationID uuid.UUID, publicOnly bool) ([]*entity.Vendor, error) {
	status := entity.VendorStatus("")
	if publicOnly {
		status = entity.VendorStatusVerified
	}

	vendors, err := srv.vendorRepo.FindByLocation(ctx, locationID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by location")
	}

	return vendors, nil
}

// FindNearby returns verified vendors only; proximity is a public surface.
func (srv *vendorService) FindNearby(ctx context.Context, longitude, latitude, radiusKm float64) ([]*entity.Vendor, error) {
	if radiusKm <= 0 {
		radiusKm = constants.DefaultRadiusKm
	}

	vendors, err := srv.vendorRepo.FindNearby(ctx, orb.Point{longitude, latitude}, radiusKm, entity.VendorStatusVerified)
	if err != nil {
		srv.log(ctx).Error("Failed to find nearby vendors", slog.Float64("radiusKm", radiusKm), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find nearby vendors")
	}

	return vendors, nil
}

func (srv *vendorService) Update(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	if !isAdmin && vendor.UserID != actorID {
		return nil, domainerrors.ErrNotVendorOwner
	}

	if input.Placement != nil {
		placement, err := srv.resolvePlacement(ctx, vendor.VendorType, input.Placement)
		if err != nil {
			return nil, err
		}

		// A location swap moves the denormalized counter with it.
		oldLocationID := vendor.Placement.LocationID
		if err := srv.swapLocationCounters(ctx, oldLocationID, placement.LocationID); err != nil {
			return nil, err
		}
		vendor.Placement = *placement
	}

	applyVendorUpdates(vendor, input)
	vendor.UpdatedAt = time.Now()

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		srv.log(ctx).Error("Failed to update vendor", slog.Any("vendorID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update vendor")
	}

	return vendor, nil
}

func (srv *vendorService) swapLocationCounters(ctx context.Context, oldID, newID *uuid.UUID) error {
	if oldID != nil && newID != nil && *oldID == *newID {
		return nil
	}

	if oldID != nil {
		if err := srv.locationRepo.IncrementVendorCount(ctx, *oldID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement former location vendor count")
		}
	}
	if newID != nil {
		if err := srv.locationRepo.IncrementVendorCount(ctx, *newID, 1); err != nil {
			return errors.Wrap(err, "failed to increment new location vendor count")
		}
	}

	return nil
}

func applyVendorUpdates(vendor *entity.Vendor, input *usecase.UpdateVendorInput) {
	if input.BusinessName != nil {
		vendor.BusinessName = *input.BusinessName
	}
	if input.BusinessDescription != nil {
		vendor.BusinessDescription = *input.BusinessDescription
	}
	if input.BusinessPhone != nil {
		vendor.BusinessPhone = *input.BusinessPhone
	}
	if input.BusinessEmail != nil {
		vendor.BusinessEmail = *input.BusinessEmail
	}
	if input.Logo != nil {
		vendor.Logo = *input.Logo
	}
	if input.Documents != nil {
		vendor.Documents = input.Documents
	}
	if input.Images != nil {
		vendor.Images = input.Images
	}
	if input.Categories != nil {
		vendor.Categories = input.Categories
	}
	if input.WhatsappNumber != nil {
		vendor.WhatsappNumber = *input.WhatsappNumber
	}
	if input.InstagramHandle != nil {
		vendor.InstagramHandle = *input.InstagramHandle
	}
	if input.FacebookPage != nil {
		vendor.FacebookPage = *input.FacebookPage
	}
	if input.IsOpen != nil {
		vendor.IsOpen = *input.IsOpen
	}
	if input.OpeningHours != nil {
		vendor.OpeningHours = *input.OpeningHours
	}
}

// UpdateStatus moves the vendor through the moderation state machine.
func (srv *vendorService) UpdateStatus(ctx context.Context, id, adminID uuid.UUID, input *usecase.UpdateVendorStatusInput) (*entity.Vendor, error) {
	target := entity.VendorStatus(input.Status)
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vendor status: " + input.Status)
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	if srv.strictTransitions && !vendor.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"vendor status cannot change from " + vendor.Status.String() + " to " + target.String())
	}

	now := time.Now()
	vendor.Status = target
	switch target {
	case entity.VendorStatusVerified:
		vendor.VerifiedAt = &now
		vendor.VerifiedBy = &adminID
		vendor.RejectionReason = ""
	case entity.VendorStatusRejected, entity.VendorStatusSuspended:
		vendor.RejectionReason = input.RejectionReason
	case entity.VendorStatusPending:
	}
	vendor.UpdatedAt = now

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		srv.log(ctx).Error("Failed to update vendor status", slog.Any("vendorID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update vendor status")
	}

	srv.publishModerationEvent(ctx, vendor.ID, target.String(), adminID, input.RejectionReason)

	srv.log(ctx).Info("Vendor status updated",
		slog.Any("vendorID", id), slog.String("status", target.String()), slog.Any("adminID", adminID))

	return vendor, nil
}

// publishModerationEvent is best-effort: a publish failure is logged and
// never surfaced to the caller.
func (srv *vendorService) publishModerationEvent(ctx context.Context, vendorID uuid.UUID, status string, actorID uuid.UUID, reason string) {
	event := &service.ModerationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EntityType: service.ModerationEntityVendor,
		EntityID:   vendorID.String(),
		Status:     status,
		ActorID:    actorID.String(),
		Reason:     reason,
	}

	if err := srv.eventPublisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event", slog.Any("vendorID", vendorID), slog.Any("error", err))
	}
}

func (srv *vendorService) Remove(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "failed to find vendor by ID")
	}

	if !isAdmin && vendor.UserID != actorID {
		return domainerrors.ErrNotVendorOwner
	}

	if err := srv.vendorRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vendor")
	}

	if vendor.Placement.LocationID != nil {
		if err := srv.locationRepo.IncrementVendorCount(ctx, *vendor.Placement.LocationID, -1); err != nil {
			srv.log(ctx).Error("Failed to decrement location vendor count", slog.Any("locationID", *vendor.Placement.LocationID), slog.Any("error", err))

			return errors.Wrap(err, "failed to decrement location vendor count")
		}
	}

	if err := srv.userRepo.UpdateRole(ctx, vendor.UserID, entity.RoleUser); err != nil {
		srv.log(ctx).Error("Failed to demote user role after vendor removal", slog.Any("userID", vendor.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to demote user role after vendor removal")
	}

	srv.log(ctx).Info("Vendor removed", slog.Any("vendorID", id), slog.Any("actorID", actorID))

	return nil
}

// Categories returns the distinct category names; publicOnly restricts the
// aggregation to verified vendors.
func (srv *vendorService) Categories(ctx context.Context, publicOnly bool) ([]string, error) {
	status := entity.VendorStatus("")
	if publicOnly {
		status = entity.VendorStatusVerified
	}

	categories, err := srv.vendorRepo.DistinctCategories(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate vendor categories")
	}

	return categories, nil
}

// QRCode renders the vendor's storefront QR as a PNG.
func (srv *vendorService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.FindOne(ctx, id, false); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateVendorQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate vendor QR code", slog.Any("vendorID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate vendor QR code")
	}

	return png, nil
}
