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
	"gorm.io/gorm/clause"
)

// geoPointExpr builds a geography point from the row's decimal columns.
// PostGIS takes longitude first.
const geoPointExpr = "ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography"

// geoQueryExpr builds a geography point from bound query parameters.
const geoQueryExpr = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"

// orderByDistance sorts rows by ascending geodesic distance from the point.
func orderByDistance(point orb.Point) clause.OrderBy {
	return clause.OrderBy{
		Expression: clause.Expr{
			SQL:                "ST_Distance(" + geoPointExpr + ", " + geoQueryExpr + ") ASC",
			Vars:               []any{point.Lon(), point.Lat()},
			WithoutParentheses: true,
		},
	}
}

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// BulkCreate persists a batch of locations in one statement. Used by the
// startup seeder.
func (repo *locationRepository) BulkCreate(ctx context.Context, locations []*entity.Location) error {
	if len(locations) == 0 {
		return nil
	}

	locationModels := make([]*model.LocationModel, 0, len(locations))
	for _, location := range locations {
		locationModels = append(locationModels, fromLocationDomain(location))
	}

	if err := repo.db.WithContext(ctx).Create(&locationModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to bulk create locations")
	}

	return nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindAll retrieves a filtered, paginated page of active locations together
// with the unpaginated total.
func (repo *locationRepository) FindAll(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.LocationModel{}).Where("is_active = ?", true)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.State != "" {
		query = query.Where("state ILIKE ?", "%"+filter.State+"%")
	}
	if filter.Lga != "" {
		query = query.Where("lga ILIKE ?", "%"+filter.Lga+"%")
	}
	if filter.Area != "" {
		query = query.Where("area ILIKE ?", "%"+filter.Area+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR area ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Near != nil {
		query = query.Where("ST_DWithin("+geoPointExpr+", "+geoQueryExpr+", ?)",
			filter.Near.Point.Lon(), filter.Near.Point.Lat(), filter.Near.RadiusKm*1000)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count locations")
	}

	if filter.Near != nil {
		query = query.Clauses(orderByDistance(filter.Near.Point))
	} else {
		query = query.Order("name ASC")
	}

	var locationModels []*model.LocationModel
	if err := query.
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&locationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, total, nil
}

// FindByState retrieves the active locations of a state, matched
// case-insensitively.
func (repo *locationRepository) FindByState(ctx context.Context, state string) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("state ILIKE ? AND is_active = ?", "%"+state+"%", true).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by state")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindNearby retrieves active locations within radiusKm of the point,
// ordered by ascending distance. Distance math stays in PostGIS.
func (repo *locationRepository) FindNearby(ctx context.Context, point orb.Point, radiusKm float64) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("ST_DWithin("+geoPointExpr+", "+geoQueryExpr+", ?)", point.Lon(), point.Lat(), radiusKm*1000).
		Clauses(orderByDistance(point)).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Update saves the full location record.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Delete removes a location by its ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// IncrementVendorCount applies an atomic delta to the vendor counter.
func (repo *locationRepository) IncrementVendorCount(ctx context.Context, id uuid.UUID, delta int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		UpdateColumn("total_vendors", gorm.Expr("total_vendors + ?", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to increment location vendor count")
	}

	return nil
}

// Count returns the total number of location rows.
func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}

	return count, nil
}

// StateStats aggregates active locations per state, alphabetically.
func (repo *locationRepository) StateStats(ctx context.Context) ([]entity.StateCount, error) {
	var stats []entity.StateCount

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("state, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("state").
		Order("state ASC").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate state stats")
	}

	return stats, nil
}

// RecountVendors recomputes every location's vendor counter from the
// vendors table in one statement.
func (repo *locationRepository) RecountVendors(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec(
		`UPDATE locations SET total_vendors = (
			SELECT COUNT(*) FROM vendors WHERE vendors.location_id = locations.id
		)`).Error; err != nil {
		return errors.Wrap(err, "failed to recount location vendors")
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:           data.ID,
		Name:         data.Name,
		Type:         entity.LocationType(data.Type),
		State:        data.State,
		Lga:          data.Lga,
		Area:         data.Area,
		Address:      data.Address,
		Description:  data.Description,
		Point:        orb.Point{data.Longitude, data.Latitude},
		IsActive:     data.IsActive,
		Images:       []string(data.Images),
		OpeningHours: data.OpeningHours,
		ContactPhone: data.ContactPhone,
		ContactEmail: data.ContactEmail,
		TotalVendors: data.TotalVendors,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:           data.ID,
		Name:         data.Name,
		Type:         data.Type.String(),
		State:        data.State,
		Lga:          data.Lga,
		Area:         data.Area,
		Address:      data.Address,
		Description:  data.Description,
		Latitude:     data.Point.Lat(),
		Longitude:    data.Point.Lon(),
		IsActive:     data.IsActive,
		Images:       datatypes.JSONSlice[string](data.Images),
		OpeningHours: data.OpeningHours,
		ContactPhone: data.ContactPhone,
		ContactEmail: data.ContactEmail,
		TotalVendors: data.TotalVendors,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
