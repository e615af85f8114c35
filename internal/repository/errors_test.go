package repository

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

func TestErrorPredicates(t *testing.T) {
	cause := errors.New("disk full")
	storage := &StorageError{Op: "create prompt", Err: cause}
	wrapped := fmt.Errorf("handler: %w", storage)

	if !IsStorage(wrapped) || IsNotFound(wrapped) || IsValidation(wrapped) {
		t.Fatal("expected only IsStorage to match")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected storage error to unwrap to its cause")
	}
	if !IsNotFound(&NotFoundError{Entity: "prompt", Key: 3}) {
		t.Fatal("expected not found match")
	}
	if got := (&NotFoundError{Entity: "prompt", Key: 3}).Error(); got != "prompt 3 not found" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&ValidationError{Fields: []string{"title", "author"}}).Error(); got != "missing required fields: title, author" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStorageErrorPassesTypedErrorsThrough(t *testing.T) {
	log := zap.NewNop()
	notFound := &NotFoundError{Entity: "category", Key: 1}
	if got := storageError(log, "op", notFound); got != notFound {
		t.Fatalf("expected not found passthrough, got %v", got)
	}
	if storageError(log, "op", nil) != nil {
		t.Fatal("expected nil for nil error")
	}
	if !IsStorage(storageError(log, "op", errors.New("boom"))) {
		t.Fatal("expected plain errors to be wrapped")
	}
}

func TestRequireFields(t *testing.T) {
	if err := requireFields("a", "x", "b", "y"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	err := requireFields("a", "", "b", "\t", "c", "z")
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 2 {
		t.Fatalf("expected two missing fields, got %v", err)
	}
}
