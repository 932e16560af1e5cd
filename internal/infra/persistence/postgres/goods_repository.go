package postgres

import (
	"context"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// goodsSortColumns whitelists the sortable columns. Anything else falls
// back to created_at.
var goodsSortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"views":      "views",
	"title":      "title",
}

// goodsRepository implements the repository.GoodsRepository interface.
type goodsRepository struct {
	db *gorm.DB
}

// NewGoodsRepository is the constructor for goodsRepository.
func NewGoodsRepository(db *gorm.DB) repository.GoodsRepository {
	return &goodsRepository{
		db: db,
	}
}

// Create persists a new goods listing.
func (repo *goodsRepository) Create(ctx context.Context, goods *entity.Goods) error {
	goodsM := fromGoodsDomain(goods)

	if err := repo.db.WithContext(ctx).Create(goodsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required goods information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create goods")
	}

	goods.ID = goodsM.ID
	goods.CreatedAt = goodsM.CreatedAt
	goods.UpdatedAt = goodsM.UpdatedAt

	return nil
}

// FindByID retrieves a goods listing by its unique ID.
func (repo *goodsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goods, error) {
	var goodsM model.GoodsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&goodsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to find goods by ID")
	}

	return toGoodsDomain(&goodsM), nil
}

// FindAll retrieves a filtered, sorted, paginated page of goods with the total.
func (repo *goodsRepository) FindAll(ctx context.Context, filter repository.GoodsFilter) ([]*entity.Goods, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.GoodsModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}
	if filter.Condition != "" {
		query = query.Where("condition ILIKE ?", "%"+filter.Condition+"%")
	}
	if filter.Brand != "" {
		query = query.Where("brand ILIKE ?", "%"+filter.Brand+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count goods")
	}

	var goodsModels []*model.GoodsModel
	if err := query.
		Order(goodsSortClause(filter.SortBy, filter.SortOrder)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&goodsModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list goods")
	}

	goods := make([]*entity.Goods, 0, len(goodsModels))
	for _, goodsM := range goodsModels {
		goods = append(goods, toGoodsDomain(goodsM))
	}

	return goods, total, nil
}

// Update saves the full goods record.
func (repo *goodsRepository) Update(ctx context.Context, goods *entity.Goods) error {
	goodsM := fromGoodsDomain(goods)

	if err := repo.db.WithContext(ctx).Save(goodsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update goods")
	}

	goods.UpdatedAt = goodsM.UpdatedAt

	return nil
}

// Delete removes a goods listing by its ID.
func (repo *goodsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GoodsModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete goods")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGoodsNotFound
	}

	return nil
}

// IncrementViews applies an atomic +1 to the view counter.
func (repo *goodsRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.GoodsModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return errors.Wrap(err, "failed to increment goods views")
	}

	return nil
}

// DistinctCategories lists the distinct non-empty category labels. An
// empty status matches all statuses.
func (repo *goodsRepository) DistinctCategories(ctx context.Context, status entity.GoodsStatus) ([]string, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.GoodsModel{}).
		Where("category <> ''")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var categories []string
	if err := query.
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate goods categories")
	}

	return categories, nil
}

// Count returns the total number of goods rows.
func (repo *goodsRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GoodsModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count goods")
	}

	return count, nil
}

// CountByStatus returns the number of goods with the given status.
func (repo *goodsRepository) CountByStatus(ctx context.Context, status entity.GoodsStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GoodsModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count goods by status")
	}

	return count, nil
}

// goodsSortClause builds a safe ORDER BY from the caller-supplied sort
// parameters.
func goodsSortClause(sortBy, sortOrder string) string {
	column, ok := goodsSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}

// --- Mapper Functions ---

// toGoodsDomain converts a GORM GoodsModel to a domain Goods entity.
func toGoodsDomain(data *model.GoodsModel) *entity.Goods {
	if data == nil {
		return nil
	}

	return &entity.Goods{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Price:          data.Price,
		Type:           entity.GoodsType(data.Type),
		Category:       data.Category,
		Images:         []string(data.Images),
		Status:         entity.GoodsStatus(data.Status),
		VendorID:       data.VendorID,
		CreatedBy:      data.CreatedBy,
		Specifications: map[string]any(data.Specifications),
		Views:          data.Views,
		FlagReason:     data.FlagReason,
		FlaggedBy:      data.FlaggedBy,
		FlaggedAt:      data.FlaggedAt,
		ApprovedAt:     data.ApprovedAt,
		ApprovedBy:     data.ApprovedBy,
		IsAvailable:    data.IsAvailable,
		Condition:      data.Condition,
		Brand:          data.Brand,
		Tags:           []string(data.Tags),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromGoodsDomain converts a domain Goods entity to a GORM GoodsModel.
func fromGoodsDomain(data *entity.Goods) *model.GoodsModel {
	if data == nil {
		return nil
	}

	return &model.GoodsModel{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Price:          data.Price,
		Type:           data.Type.String(),
		Category:       data.Category,
		Images:         datatypes.JSONSlice[string](data.Images),
		Status:         data.Status.String(),
		VendorID:       data.VendorID,
		CreatedBy:      data.CreatedBy,
		Specifications: datatypes.JSONMap(data.Specifications),
		Views:          data.Views,
		FlagReason:     data.FlagReason,
		FlaggedBy:      data.FlaggedBy,
		FlaggedAt:      data.FlaggedAt,
		ApprovedAt:     data.ApprovedAt,
		ApprovedBy:     data.ApprovedBy,
		IsAvailable:    data.IsAvailable,
		Condition:      data.Condition,
		Brand:          data.Brand,
		Tags:           datatypes.JSONSlice[string](data.Tags),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
