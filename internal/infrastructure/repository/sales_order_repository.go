package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	domainRepo "github.com/njorogedev/leathercraft-api/internal/domain/repository"
)

type salesOrderRepository struct {
	db *gorm.DB
}

// NewSalesOrderRepository creates a new sales order repository
func NewSalesOrderRepository(db *gorm.DB) domainRepo.SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

func (r *salesOrderRepository) Create(ctx context.Context, order *entity.SalesOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *salesOrderRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.SalesOrder, error) {
	var order entity.SalesOrder
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Preload("Customer").Preload("Lines").Preload("Lines.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *salesOrderRepository) Update(ctx context.Context, order *entity.SalesOrder) error {
	return r.db.WithContext(ctx).Omit("Lines", "Customer").Save(order).Error
}

func (r *salesOrderRepository) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Delete(&entity.SalesOrder{}, "id = ?", id).Error
}

func (r *salesOrderRepository) List(ctx context.Context, scope access.Scope, params *domainRepo.OrderFilterParams) ([]entity.SalesOrder, int64, error) {
	var orders []entity.SalesOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).Scopes(Scoped(scope))

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		query = query.Where("LOWER(order_number) LIKE LOWER(?)", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").Preload("Lines").Preload("Lines.Product").
		Order("date DESC, created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// AdvanceStatus performs a guarded status transition. The WHERE clause on the
// current status makes concurrent transitions race for a single row update;
// the loser sees zero rows affected.
func (r *salesOrderRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.SalesOrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *salesOrderRepository) CreateLine(ctx context.Context, line *entity.SalesOrderLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *salesOrderRepository) GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.SalesOrderLine, error) {
	var line entity.SalesOrderLine
	err := r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.SalesOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Preload("Product").
		First(&line, "id = ?", lineID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *salesOrderRepository) UpdateLine(ctx context.Context, line *entity.SalesOrderLine) error {
	return r.db.WithContext(ctx).Omit("Product", "Order").Save(line).Error
}

func (r *salesOrderRepository) DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.SalesOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Delete(&entity.SalesOrderLine{}, "id = ?", lineID).Error
}
