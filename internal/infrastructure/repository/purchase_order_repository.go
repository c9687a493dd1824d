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

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Preload("Vendor").Preload("Lines").Preload("Lines.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Omit("Lines", "Vendor").Save(order).Error
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Delete(&entity.PurchaseOrder{}, "id = ?", id).Error
}

func (r *purchaseOrderRepository) List(ctx context.Context, scope access.Scope, params *domainRepo.OrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var orders []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).Scopes(Scoped(scope))

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
		Preload("Vendor").Preload("Lines").Preload("Lines.Product").
		Order("date DESC, created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *purchaseOrderRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseOrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *purchaseOrderRepository) CreateLine(ctx context.Context, line *entity.PurchaseOrderLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *purchaseOrderRepository) GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.PurchaseOrderLine, error) {
	var line entity.PurchaseOrderLine
	err := r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.PurchaseOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Preload("Product").
		First(&line, "id = ?", lineID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *purchaseOrderRepository) UpdateLine(ctx context.Context, line *entity.PurchaseOrderLine) error {
	return r.db.WithContext(ctx).Omit("Product", "Order").Save(line).Error
}

func (r *purchaseOrderRepository) DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.PurchaseOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Delete(&entity.PurchaseOrderLine{}, "id = ?", lineID).Error
}

type leatherPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewLeatherPurchaseOrderRepository creates a new raw leather purchase order repository
func NewLeatherPurchaseOrderRepository(db *gorm.DB) domainRepo.LeatherPurchaseOrderRepository {
	return &leatherPurchaseOrderRepository{db: db}
}

func (r *leatherPurchaseOrderRepository) Create(ctx context.Context, order *entity.LeatherPurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *leatherPurchaseOrderRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherPurchaseOrder, error) {
	var order entity.LeatherPurchaseOrder
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Preload("Supplier").Preload("Lines").Preload("Lines.LeatherType").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *leatherPurchaseOrderRepository) Update(ctx context.Context, order *entity.LeatherPurchaseOrder) error {
	return r.db.WithContext(ctx).Omit("Lines", "Supplier").Save(order).Error
}

func (r *leatherPurchaseOrderRepository) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Delete(&entity.LeatherPurchaseOrder{}, "id = ?", id).Error
}

func (r *leatherPurchaseOrderRepository) List(ctx context.Context, scope access.Scope, params *domainRepo.OrderFilterParams) ([]entity.LeatherPurchaseOrder, int64, error) {
	var orders []entity.LeatherPurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LeatherPurchaseOrder{}).Scopes(Scoped(scope))

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
		Preload("Supplier").Preload("Lines").Preload("Lines.LeatherType").
		Order("date DESC, created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *leatherPurchaseOrderRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enum.PurchaseOrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.LeatherPurchaseOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *leatherPurchaseOrderRepository) CreateLine(ctx context.Context, line *entity.LeatherPurchaseOrderLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *leatherPurchaseOrderRepository) GetLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) (*entity.LeatherPurchaseOrderLine, error) {
	var line entity.LeatherPurchaseOrderLine
	err := r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.LeatherPurchaseOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Preload("LeatherType").
		First(&line, "id = ?", lineID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *leatherPurchaseOrderRepository) UpdateLine(ctx context.Context, line *entity.LeatherPurchaseOrderLine) error {
	return r.db.WithContext(ctx).Omit("LeatherType", "Order").Save(line).Error
}

func (r *leatherPurchaseOrderRepository) DeleteLine(ctx context.Context, scope access.Scope, orderID, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id IN (?)", r.db.Model(&entity.LeatherPurchaseOrder{}).Select("id").Scopes(Scoped(scope)).Where("id = ?", orderID)).
		Delete(&entity.LeatherPurchaseOrderLine{}, "id = ?", lineID).Error
}
