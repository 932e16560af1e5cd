package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// Create persists a new vendor profile.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendor
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindByUserID retrieves the vendor profile owned by a user.
func (repo *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	return toVendorDomain(&vendorM), nil
}

// FindAll retrieves a filtered, paginated page of vendors with the total.
func (repo *vendorRepository) FindAll(ctx context.Context, filter repository.VendorFilter) ([]*entity.Vendor, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.VendorModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VendorType != "" {
		query = query.Where("vendor_type = ?", filter.VendorType)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.State != "" {
		query = query.Where("home_state ILIKE ?", "%"+filter.State+"%")
	}
	if filter.Lga != "" {
		query = query.Where("home_lga ILIKE ?", "%"+filter.Lga+"%")
	}
	if filter.Area != "" {
		query = query.Where("home_area ILIKE ?", "%"+filter.Area+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("business_name ILIKE ? OR business_description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		// jsonb_exists avoids the ? operator clashing with placeholders.
		query = query.Where("jsonb_exists(categories::jsonb, ?)", filter.Category)
	}
	if filter.IsOpen != nil {
		query = query.Where("is_open = ?", *filter.IsOpen)
	}
	if filter.Near != nil {
		query = query.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("ST_DWithin("+geoPointExpr+", "+geoQueryExpr+", ?)",
				filter.Near.Point.Lon(), filter.Near.Point.Lat(), filter.Near.RadiusKm*1000)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vendors")
	}

	if filter.Near != nil {
		query = query.Clauses(orderByDistance(filter.Near.Point))
	} else {
		query = query.Order("created_at DESC")
	}

	var vendorModels []*model.VendorModel
	if err := query.
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&vendorModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, total, nil
}

// FindByLocation retrieves the vendors placed inside a location. An empty
// status matches all statuses.
func (repo *vendorRepository) FindByLocation(ctx context.Context, locationID uuid.UUID, status entity.VendorStatus) ([]*entity.Vendor, error) {
	query := repo.db.WithContext(ctx).Where("location_id = ?", locationID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var vendorModels []*model.VendorModel
	if err := query.
		Order("business_name ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by location")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// FindNearby retrieves vendors with coordinates within radiusKm of the
// point, ordered by ascending distance.
func (repo *vendorRepository) FindNearby(ctx context.Context, point orb.Point, radiusKm float64, status entity.VendorStatus) ([]*entity.Vendor, error) {
	query := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("ST_DWithin("+geoPointExpr+", "+geoQueryExpr+", ?)", point.Lon(), point.Lat(), radiusKm*1000)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var vendorModels []*model.VendorModel
	if err := query.
		Clauses(orderByDistance(point)).
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// Update saves the full vendor record.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Save(vendorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor")
	}

	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// Delete removes a vendor by its ID.
func (repo *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VendorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// IncrementGoodsCount applies an atomic delta to the goods counter.
func (repo *vendorRepository) IncrementGoodsCount(ctx context.Context, id uuid.UUID, delta int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		UpdateColumn("total_goods", gorm.Expr("total_goods + ?", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to increment vendor goods count")
	}

	return nil
}

// DistinctCategories aggregates the distinct category names out of the
// JSON arrays. An empty status matches all statuses.
func (repo *vendorRepository) DistinctCategories(ctx context.Context, status entity.VendorStatus) ([]string, error) {
	query := repo.db.WithContext(ctx).
		Table("vendors, jsonb_array_elements_text(categories::jsonb) AS category")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var categories []string
	if err := query.
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate vendor categories")
	}

	return categories, nil
}

// Count returns the total number of vendor rows.
func (repo *vendorRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vendors")
	}

	return count, nil
}

// CountByStatus returns the number of vendors with the given status.
func (repo *vendorRepository) CountByStatus(ctx context.Context, status entity.VendorStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vendors by status")
	}

	return count, nil
}

// RecountGoods recomputes every vendor's goods counter from the goods
// table in one statement.
func (repo *vendorRepository) RecountGoods(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec(
		`UPDATE vendors SET total_goods = (
			SELECT COUNT(*) FROM goods WHERE goods.vendor_id = vendors.id
		)`).Error; err != nil {
		return errors.Wrap(err, "failed to recount vendor goods")
	}

	return nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	placement := entity.Placement{
		LocationID:  data.LocationID,
		ShopNumber:  data.ShopNumber,
		ShopFloor:   data.ShopFloor,
		ShopBlock:   data.ShopBlock,
		HomeAddress: data.HomeAddress,
		HomeState:   data.HomeState,
		HomeLga:     data.HomeLga,
		HomeArea:    data.HomeArea,
	}
	if data.Latitude != nil && data.Longitude != nil {
		point := orb.Point{*data.Longitude, *data.Latitude}
		placement.Point = &point
	}

	return &entity.Vendor{
		ID:                  data.ID,
		UserID:              data.UserID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		VendorType:          entity.VendorType(data.VendorType),
		Placement:           placement,
		BusinessPhone:       data.BusinessPhone,
		BusinessEmail:       data.BusinessEmail,
		Logo:                data.Logo,
		Documents:           []string(data.Documents),
		Images:              []string(data.Images),
		Categories:          []string(data.Categories),
		WhatsappNumber:      data.WhatsappNumber,
		InstagramHandle:     data.InstagramHandle,
		FacebookPage:        data.FacebookPage,
		IsOpen:              data.IsOpen,
		OpeningHours:        data.OpeningHours,
		Status:              entity.VendorStatus(data.Status),
		VerifiedAt:          data.VerifiedAt,
		VerifiedBy:          data.VerifiedBy,
		RejectionReason:     data.RejectionReason,
		TotalGoods:          data.TotalGoods,
		Rating:              data.Rating,
		TotalReviews:        data.TotalReviews,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	vendorM := &model.VendorModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		VendorType:          data.VendorType.String(),
		LocationID:          data.Placement.LocationID,
		ShopNumber:          data.Placement.ShopNumber,
		ShopFloor:           data.Placement.ShopFloor,
		ShopBlock:           data.Placement.ShopBlock,
		HomeAddress:         data.Placement.HomeAddress,
		HomeState:           data.Placement.HomeState,
		HomeLga:             data.Placement.HomeLga,
		HomeArea:            data.Placement.HomeArea,
		BusinessPhone:       data.BusinessPhone,
		BusinessEmail:       data.BusinessEmail,
		Logo:                data.Logo,
		Documents:           datatypes.JSONSlice[string](data.Documents),
		Images:              datatypes.JSONSlice[string](data.Images),
		Categories:          datatypes.JSONSlice[string](data.Categories),
		WhatsappNumber:      data.WhatsappNumber,
		InstagramHandle:     data.InstagramHandle,
		FacebookPage:        data.FacebookPage,
		IsOpen:              data.IsOpen,
		OpeningHours:        data.OpeningHours,
		Status:              data.Status.String(),
		VerifiedAt:          data.VerifiedAt,
		VerifiedBy:          data.VerifiedBy,
		RejectionReason:     data.RejectionReason,
		TotalGoods:          data.TotalGoods,
		Rating:              data.Rating,
		TotalReviews:        data.TotalReviews,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.Placement.Point != nil {
		lat := data.Placement.Point.Lat()
		lng := data.Placement.Point.Lon()
		vendorM.Latitude = &lat
		vendorM.Longitude = &lng
	}

	return vendorM
}
