package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autofiltro/catalog/pkg/sanitizer"
)

// CategoryService owns category CRUD and its validation policy.
type CategoryService struct {
	storage Storage
	log     *slog.Logger
}

func NewCategoryService(storage Storage, log *slog.Logger) *CategoryService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CategoryService{storage: storage, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	s.log.DebugContext(ctx, "catalog operation", "op", "list_categories")
	return s.storage.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid category id %d", ErrInvalidInput, id)
	}
	return s.storage.GetCategory(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	name := cleanText(req.Name, 50)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	kind := cleanText(req.Kind, 20)
	if kind == "" {
		kind = "general"
	}

	c := &Category{
		Name:        name,
		Description: cleanText(req.Description, 500),
		Kind:        kind,
	}
	if err := s.storage.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created", "op", "create_category", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req CreateCategoryRequest) (*Category, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid category id %d", ErrInvalidInput, id)
	}

	name := cleanText(req.Name, 50)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	kind := cleanText(req.Kind, 20)
	if kind == "" {
		kind = "general"
	}

	c := &Category{
		ID:          id,
		Name:        name,
		Description: cleanText(req.Description, 500),
		Kind:        kind,
	}
	if err := s.storage.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return s.storage.GetCategory(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: invalid category id %d", ErrInvalidInput, id)
	}
	if err := s.storage.SoftDeleteCategory(ctx, id); err != nil {
		return err
	}

	s.log.WarnContext(ctx, "category soft-deleted", "op", "delete_category", "id", id)
	return nil
}

// cleanText sanitizes free-form text fields: control and injection characters
// are stripped and the result is length-capped. Unlike filter tokens, spaces
// and mixed case are legitimate here.
func cleanText(s string, maxLen int) string {
	return sanitizer.Apply(s,
		sanitizer.Trim,
		sanitizer.RemoveControlChars,
		sanitizer.StripInjectionChars,
		func(v string) string { return sanitizer.MaxLength(v, maxLen) },
	)
}
