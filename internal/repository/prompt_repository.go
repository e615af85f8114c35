package repository

import (
	"errors"
	"time"

	"github.com/farellandr/promptbox/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PromptRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewPromptRepository(db *gorm.DB, logger *zap.Logger) *PromptRepository {
	return &PromptRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ListAll returns the whole catalog ordered by category, then title.
func (r *PromptRepository) ListAll() ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	if err := r.db.Order("category ASC, title ASC, id ASC").Find(&prompts).Error; err != nil {
		return nil, storageError(r.logger, "list prompts", err)
	}
	return prompts, nil
}

func (r *PromptRepository) ListByCategory(category string) ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	err := r.db.Where("category = ?", category).Order("title ASC, id ASC").Find(&prompts).Error
	if err != nil {
		return nil, storageError(r.logger, "list prompts by category", err)
	}
	return prompts, nil
}

func (r *PromptRepository) GetByID(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.Where("id = ?", id).First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "prompt", Key: id}
		}
		return nil, storageError(r.logger, "get prompt", err)
	}
	return &prompt, nil
}

// Create stores a new prompt with zeroed counters and returns the stored record.
func (r *PromptRepository) Create(title, content, category, author string, tags *string) (*models.Prompt, error) {
	if err := requireFields("title", title, "content", content, "category", category, "author", author); err != nil {
		return nil, err
	}

	prompt := models.Prompt{
		Title:     title,
		Content:   content,
		Category:  category,
		Author:    author,
		CreatedAt: r.now().UTC(),
		Likes:     0,
		Dislikes:  0,
		Tags:      models.NormalizeTags(tags),
	}
	if err := r.db.Create(&prompt).Error; err != nil {
		return nil, storageError(r.logger, "create prompt", err)
	}
	return &prompt, nil
}

func (r *PromptRepository) IncrementLikes(id uint) error {
	return r.increment(id, "likes")
}

func (r *PromptRepository) IncrementDislikes(id uint) error {
	return r.increment(id, "dislikes")
}

// increment bumps a counter in a single relative UPDATE so concurrent votes never
// overwrite each other.
func (r *PromptRepository) increment(id uint, column string) error {
	result := r.db.Model(&models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return storageError(r.logger, "increment "+column, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "prompt", Key: id}
	}
	return nil
}

// LikeAndFetch records a like and returns the prompt as stored afterwards.
func (r *PromptRepository) LikeAndFetch(id uint) (*models.Prompt, error) {
	if err := r.IncrementLikes(id); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// DislikeAndFetch records a dislike and returns the prompt as stored afterwards.
func (r *PromptRepository) DislikeAndFetch(id uint) (*models.Prompt, error) {
	if err := r.IncrementDislikes(id); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *PromptRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Prompt{}).Count(&count).Error; err != nil {
		return 0, storageError(r.logger, "count prompts", err)
	}
	return count, nil
}

// Insert stores fully formed prompts as given, counters and timestamps included.
// It is used for seeding and bypasses the create-time defaults.
func (r *PromptRepository) Insert(prompts []models.Prompt) error {
	if len(prompts) == 0 {
		return nil
	}
	if err := r.db.Create(&prompts).Error; err != nil {
		return storageError(r.logger, "insert prompts", err)
	}
	return nil
}
