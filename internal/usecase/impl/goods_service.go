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
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// goodsService implements the GoodsUsecase interface.
type goodsService struct {
	goodsRepo         repository.GoodsRepository
	vendorRepo        repository.VendorRepository
	eventPublisher    service.EventPublisher
	strictTransitions bool
	logger            *slog.Logger
}

// GoodsServiceParams holds dependencies for GoodsService, injected by Fx.
type GoodsServiceParams struct {
	fx.In

	GoodsRepo      repository.GoodsRepository
	VendorRepo     repository.VendorRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewGoodsService is the constructor for goodsService.
func NewGoodsService(params GoodsServiceParams) usecase.GoodsUsecase {
	strict := false
	if params.Config != nil && params.Config.Moderation != nil {
		strict = params.Config.Moderation.StrictTransitions
	}

	return &goodsService{
		goodsRepo:         params.GoodsRepo,
		vendorRepo:        params.VendorRepo,
		eventPublisher:    params.EventPublisher,
		strictTransitions: strict,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *goodsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a new item under the caller's vendor profile. Only verified
// vendors may list goods; the item starts pending moderation.
func (srv *goodsService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateGoodsInput) (*entity.Goods, error) {
	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotVendor
		}

		return nil, errors.Wrap(err, "failed to resolve caller's vendor profile")
	}
	if vendor.Status != entity.VendorStatusVerified {
		return nil, domainerrors.ErrVendorNotVerified
	}

	goodsType := entity.GoodsType(input.Type)
	if !goodsType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown goods type: " + input.Type)
	}

	now := time.Now()
	goods := &entity.Goods{
		ID:             uuid.New(),
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Type:           goodsType,
		Category:       input.Category,
		Images:         input.Images,
		Status:         entity.GoodsStatusPending,
		VendorID:       vendor.ID,
		CreatedBy:      userID,
		Specifications: input.Specifications,
		IsAvailable:    true,
		Condition:      input.Condition,
		Brand:          input.Brand,
		Tags:           input.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.goodsRepo.Create(ctx, goods); err != nil {
		srv.log(ctx).Error("Failed to create goods", slog.Any("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create goods")
	}

	if err := srv.vendorRepo.IncrementGoodsCount(ctx, vendor.ID, 1); err != nil {
		srv.log(ctx).Error("Failed to increment vendor goods count", slog.Any("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to increment vendor goods count")
	}

	srv.log(ctx).Debug("Goods created", slog.Any("goodsID", goods.ID), slog.Any("vendorID", vendor.ID))

	return goods, nil
}

func (srv *goodsService) FindAll(ctx context.Context, query *usecase.GoodsQuery) (*usecase.GoodsPage, error) {
	page, limit := normalizePagination(query.Page, query.Limit, constants.DefaultLimit)

	status := entity.GoodsStatus(query.Status)
	availableOnly := false
	if query.PublicOnly {
		status = entity.GoodsStatusApproved
		availableOnly = true
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultGoodsSort
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = constants.DefaultSortOrder
	}

	filter := repository.GoodsFilter{
		Page:          page,
		Limit:         limit,
		Status:        status,
		Type:          entity.GoodsType(query.Type),
		Category:      query.Category,
		Search:        query.Search,
		MinPrice:      query.MinPrice,
		MaxPrice:      query.MaxPrice,
		VendorID:      query.VendorID,
		Condition:     query.Condition,
		Brand:         query.Brand,
		SortBy:        sortBy,
		SortOrder:     sortOrder,
		AvailableOnly: availableOnly,
	}

	goods, total, err := srv.goodsRepo.FindAll(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list goods", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list goods")
	}

	return &usecase.GoodsPage{
		Goods: goods,
		Total: total,
		Pages: totalPages(total, limit),
	}, nil
}

// FindOne fetches a single item. When countView is set the view counter is
// bumped atomically; a failed bump never fails the read.
func (srv *goodsService) FindOne(ctx context.Context, id uuid.UUID, publicOnly, countView bool) (*entity.Goods, error) {
	goods, err := srv.goodsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to find goods by ID")
	}

	if publicOnly && (goods.Status != entity.GoodsStatusApproved || !goods.IsAvailable) {
		return nil, domainerrors.ErrGoodsNotFound
	}

	if countView {
		if err := srv.goodsRepo.IncrementViews(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to increment goods views", slog.Any("goodsID", id), slog.Any("error", err))
		} else {
			goods.Views++
		}
	}

	return goods, nil
}

func (srv *goodsService) FindByVendor(ctx context.Context, vendorID uuid.UUID, query *usecase.GoodsQuery) (*usecase.GoodsPage, error) {
	scoped := *query
	scoped.VendorID = &vendorID

	return srv.FindAll(ctx, &scoped)
}

// FindByOwner resolves the caller's vendor profile and lists its goods
// without the public status gate, so pending and flagged items show up.
func (srv *goodsService) FindByOwner(ctx context.Context, userID uuid.UUID, query *usecase.GoodsQuery) (*usecase.GoodsPage, error) {
	vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotVendor
		}

		return nil, errors.Wrap(err, "failed to resolve caller's vendor profile")
	}

	scoped := *query
	scoped.PublicOnly = false

	return srv.FindByVendor(ctx, vendor.ID, &scoped)
}

func (srv *goodsService) Update(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, input *usecase.UpdateGoodsInput) (*entity.Goods, error) {
	goods, err := srv.goodsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to find goods by ID")
	}

	if !isAdmin && goods.CreatedBy != actorID {
		return nil, domainerrors.ErrNotGoodsOwner
	}

	applyGoodsUpdates(goods, input)
	goods.UpdatedAt = time.Now()

	if err := srv.goodsRepo.Update(ctx, goods); err != nil {
		srv.log(ctx).Error("Failed to update goods", slog.Any("goodsID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update goods")
	}

	return goods, nil
}

func applyGoodsUpdates(goods *entity.Goods, input *usecase.UpdateGoodsInput) {
	if input.Title != nil {
		goods.Title = *input.Title
	}
	if input.Description != nil {
		goods.Description = *input.Description
	}
	if input.Price != nil {
		goods.Price = *input.Price
	}
	if input.Category != nil {
		goods.Category = *input.Category
	}
	if input.Images != nil {
		goods.Images = input.Images
	}
	if input.Specifications != nil {
		goods.Specifications = input.Specifications
	}
	if input.IsAvailable != nil {
		goods.IsAvailable = *input.IsAvailable
	}
	if input.Condition != nil {
		goods.Condition = *input.Condition
	}
	if input.Brand != nil {
		goods.Brand = *input.Brand
	}
	if input.Tags != nil {
		goods.Tags = input.Tags
	}
}

// UpdateStatus moves the item through the moderation state machine.
// Approval clears any flag metadata; dropping forces the item off sale.
func (srv *goodsService) UpdateStatus(ctx context.Context, id, adminID uuid.UUID, input *usecase.UpdateGoodsStatusInput) (*entity.Goods, error) {
	target := entity.GoodsStatus(input.Status)
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown goods status: " + input.Status)
	}

	goods, err := srv.goodsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to find goods by ID")
	}

	if srv.strictTransitions && !goods.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"goods status cannot change from " + goods.Status.String() + " to " + target.String())
	}

	now := time.Now()
	goods.Status = target
	switch target {
	case entity.GoodsStatusApproved:
		goods.ApprovedAt = &now
		goods.ApprovedBy = &adminID
		goods.FlagReason = ""
		goods.FlaggedBy = nil
		goods.FlaggedAt = nil
	case entity.GoodsStatusFlagged:
		goods.FlagReason = input.Reason
		goods.FlaggedBy = &adminID
		goods.FlaggedAt = &now
	case entity.GoodsStatusDropped:
		goods.FlagReason = input.Reason
		goods.FlaggedBy = &adminID
		goods.FlaggedAt = &now
		goods.IsAvailable = false
	case entity.GoodsStatusPending:
	}
	goods.UpdatedAt = now

	if err := srv.goodsRepo.Update(ctx, goods); err != nil {
		srv.log(ctx).Error("Failed to update goods status", slog.Any("goodsID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update goods status")
	}

	srv.publishModerationEvent(ctx, goods.ID, target.String(), adminID, input.Reason)

	srv.log(ctx).Info("Goods status updated",
		slog.Any("goodsID", id), slog.String("status", target.String()), slog.Any("adminID", adminID))

	return goods, nil
}

// publishModerationEvent is best-effort: a publish failure is logged and
// never surfaced to the caller.
func (srv *goodsService) publishModerationEvent(ctx context.Context, goodsID uuid.UUID, status string, actorID uuid.UUID, reason string) {
	event := &service.ModerationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EntityType: service.ModerationEntityGoods,
		EntityID:   goodsID.String(),
		Status:     status,
		ActorID:    actorID.String(),
		Reason:     reason,
	}

	if err := srv.eventPublisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event", slog.Any("goodsID", goodsID), slog.Any("error", err))
	}
}

func (srv *goodsService) Remove(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	goods, err := srv.goodsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return domainerrors.ErrGoodsNotFound
		}

		return errors.Wrap(err, "failed to find goods by ID")
	}

	if !isAdmin && goods.CreatedBy != actorID {
		return domainerrors.ErrNotGoodsOwner
	}

	if err := srv.goodsRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete goods")
	}

	if err := srv.vendorRepo.IncrementGoodsCount(ctx, goods.VendorID, -1); err != nil {
		srv.log(ctx).Error("Failed to decrement vendor goods count", slog.Any("vendorID", goods.VendorID), slog.Any("error", err))

		return errors.Wrap(err, "failed to decrement vendor goods count")
	}

	srv.log(ctx).Info("Goods removed", slog.Any("goodsID", id), slog.Any("actorID", actorID))

	return nil
}

// Categories returns the distinct category names; publicOnly restricts the
// aggregation to approved goods.
func (srv *goodsService) Categories(ctx context.Context, publicOnly bool) ([]string, error) {
	status := entity.GoodsStatus("")
	if publicOnly {
		status = entity.GoodsStatusApproved
	}

	categories, err := srv.goodsRepo.DistinctCategories(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate goods categories")
	}

	return categories, nil
}

// Stats aggregates the per-status counts from independent queries, so the
// snapshot is best-effort consistent.
func (srv *goodsService) Stats(ctx context.Context) (*repository.GoodsStats, error) {
	stats := &repository.GoodsStats{}

	total, err := srv.goodsRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count goods")
	}
	stats.Total = total

	counts := []struct {
		status entity.GoodsStatus
		dest   *int64
	}{
		{entity.GoodsStatusPending, &stats.Pending},
		{entity.GoodsStatusApproved, &stats.Approved},
		{entity.GoodsStatusFlagged, &stats.Flagged},
		{entity.GoodsStatusDropped, &stats.Dropped},
	}
	for _, c := range counts {
		n, err := srv.goodsRepo.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count goods with status %s", c.status)
		}
		*c.dest = n
	}

	return stats, nil
}
