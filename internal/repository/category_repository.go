package repository

import (
	"errors"

	"github.com/farellandr/promptbox/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) ListAll() ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, storageError(r.logger, "list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", Key: id}
		}
		return nil, storageError(r.logger, "get category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", Key: name}
		}
		return nil, storageError(r.logger, "get category by name", err)
	}
	return &category, nil
}

// Create inserts a category. A duplicate name is rejected by the unique index and
// surfaces as a StorageError.
func (r *CategoryRepository) Create(name, icon, color string) (*models.Category, error) {
	if err := requireFields("name", name, "icon", icon, "color", color); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:  name,
		Icon:  icon,
		Color: color,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, storageError(r.logger, "create category", err)
	}
	return &category, nil
}

// Update rewrites name, icon and color. When the name changes every prompt filed
// under the old name is relabeled in the same transaction.
func (r *CategoryRepository) Update(id uint, name, icon, color string) (*models.Category, error) {
	if err := requireFields("name", name, "icon", icon, "color", color); err != nil {
		return nil, err
	}

	var category models.Category
	var relabeled int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", Key: id}
			}
			return err
		}

		oldName := category.Name
		category.Name = name
		category.Icon = icon
		category.Color = color
		if err := tx.Save(&category).Error; err != nil {
			return err
		}

		if oldName == name {
			return nil
		}
		result := tx.Model(&models.Prompt{}).Where("category = ?", oldName).Update("category", name)
		if result.Error != nil {
			return result.Error
		}
		relabeled = result.RowsAffected
		return nil
	})
	if err != nil {
		return nil, storageError(r.logger, "update category", err)
	}

	if relabeled > 0 {
		r.logger.Info("Relabeled prompts after category rename",
			zap.Uint("category_id", id),
			zap.String("name", name),
			zap.Int64("prompts", relabeled),
		)
	}
	return &category, nil
}

// Delete removes the category and every prompt filed under its name. It returns
// the number of prompts removed.
func (r *CategoryRepository) Delete(id uint) (int64, error) {
	var category models.Category
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", Key: id}
			}
			return err
		}

		result := tx.Where("category = ?", category.Name).Delete(&models.Prompt{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		return tx.Delete(&models.Category{}, category.ID).Error
	})
	if err != nil {
		return 0, storageError(r.logger, "delete category", err)
	}

	r.logger.Info("Deleted category",
		zap.Uint("category_id", id),
		zap.String("name", category.Name),
		zap.Int64("prompts", removed),
	)
	return removed, nil
}

type categoryCountRow struct {
	ID    uint
	Name  string
	Icon  string
	Color string
	Count int64
}

// ListWithCounts returns every category, including empty ones, with the number of
// prompts referencing it by name.
func (r *CategoryRepository) ListWithCounts() ([]models.CategoryWithCount, error) {
	var rows []categoryCountRow
	err := r.db.Table("categories AS c").
		Select("c.id, c.name, c.icon, c.color, COUNT(p.id) AS count").
		Joins("LEFT JOIN prompts p ON p.category = c.name").
		Group("c.id, c.name, c.icon, c.color").
		Order("c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError(r.logger, "list categories with counts", err)
	}

	result := make([]models.CategoryWithCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.CategoryWithCount{
			Category: models.Category{
				ID:    row.ID,
				Name:  row.Name,
				Icon:  row.Icon,
				Color: row.Color,
			},
			Count: row.Count,
		})
	}
	return result, nil
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, storageError(r.logger, "count categories", err)
	}
	return count, nil
}
