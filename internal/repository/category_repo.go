package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListVisible returns the tenant's own categories plus the global ones
// (tenant_id IS NULL). A zero tenantID lists only global categories.
func (r *CategoryRepository) ListVisible(ctx context.Context, tenantID int64) ([]domain.PropertyCategory, error) {
	var cats []domain.PropertyCategory
	q := r.db.WithContext(ctx).Order("name asc")
	if tenantID != 0 {
		q = q.Where("tenant_id = ? OR tenant_id IS NULL", tenantID)
	} else {
		q = q.Where("tenant_id IS NULL")
	}
	tx := q.Find(&cats)
	return cats, tx.Error
}

// GetOwned fetches a category only if it belongs to the tenant. Returns
// (nil, nil) when absent or not owned.
func (r *CategoryRepository) GetOwned(ctx context.Context, id, tenantID int64) (*domain.PropertyCategory, error) {
	var cat domain.PropertyCategory
	tx := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&cat)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *domain.PropertyCategory) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *CategoryRepository) Update(ctx context.Context, cat *domain.PropertyCategory) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PropertyCategory{}, id).Error
}

// CountProperties reports how many properties reference the category.
func (r *CategoryRepository) CountProperties(ctx context.Context, categoryID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("category_id = ?", categoryID).
		Count(&cnt)
	return cnt, tx.Error
}
