package repository

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the data-access layer handed to the HTTP surface in place of the raw connection.
type Store struct {
	Categories *CategoryRepository
	Prompts    *PromptRepository
}

func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		Categories: NewCategoryRepository(db, logger),
		Prompts:    NewPromptRepository(db, logger),
	}
}

// storageError logs the driver detail and wraps it. Not-found and validation errors pass through.
func storageError(logger *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	var notFound *NotFoundError
	var invalid *ValidationError
	var wrapped *StorageError
	if errors.As(err, &notFound) || errors.As(err, &invalid) || errors.As(err, &wrapped) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Warn("Unique constraint violated", zap.String("op", op), zap.Error(err))
	} else {
		logger.Error("Storage operation failed", zap.String("op", op), zap.Error(err))
	}
	return &StorageError{Op: op, Err: err}
}
