package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/entity"
	domainRepo "github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/pkg/pagination"
)

type leatherSupplierRepository struct {
	db *gorm.DB
}

// NewLeatherSupplierRepository creates a new leather supplier repository
func NewLeatherSupplierRepository(db *gorm.DB) domainRepo.LeatherSupplierRepository {
	return &leatherSupplierRepository{db: db}
}

func (r *leatherSupplierRepository) Create(ctx context.Context, supplier *entity.LeatherSupplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *leatherSupplierRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherSupplier, error) {
	var supplier entity.LeatherSupplier
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *leatherSupplierRepository) Update(ctx context.Context, supplier *entity.LeatherSupplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *leatherSupplierRepository) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Delete(&entity.LeatherSupplier{}, "id = ?", id).Error
}

func (r *leatherSupplierRepository) List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.LeatherSupplier, int64, error) {
	var suppliers []entity.LeatherSupplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LeatherSupplier{}).Scopes(Scoped(scope))

	if search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&suppliers).Error

	return suppliers, total, err
}

type leatherTypeRepository struct {
	db *gorm.DB
}

// NewLeatherTypeRepository creates a new leather type repository
func NewLeatherTypeRepository(db *gorm.DB) domainRepo.LeatherTypeRepository {
	return &leatherTypeRepository{db: db}
}

func (r *leatherTypeRepository) Create(ctx context.Context, leatherType *entity.LeatherType) error {
	return r.db.WithContext(ctx).Create(leatherType).Error
}

func (r *leatherTypeRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*entity.LeatherType, error) {
	var leatherType entity.LeatherType
	err := r.db.WithContext(ctx).Scopes(Scoped(scope)).
		First(&leatherType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &leatherType, err
}

func (r *leatherTypeRepository) Update(ctx context.Context, leatherType *entity.LeatherType) error {
	return r.db.WithContext(ctx).Save(leatherType).Error
}

func (r *leatherTypeRepository) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(Scoped(scope)).
		Delete(&entity.LeatherType{}, "id = ?", id).Error
}

func (r *leatherTypeRepository) List(ctx context.Context, scope access.Scope, params *pagination.PaginationParams, search string) ([]entity.LeatherType, int64, error) {
	var leatherTypes []entity.LeatherType
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LeatherType{}).Scopes(Scoped(scope))

	if search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&leatherTypes).Error

	return leatherTypes, total, err
}
