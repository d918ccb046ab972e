package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DistributorService owns distributor CRUD and its validation policy.
type DistributorService struct {
	storage Storage
	log     *slog.Logger
}

func NewDistributorService(storage Storage, log *slog.Logger) *DistributorService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DistributorService{storage: storage, log: log}
}

func (s *DistributorService) List(ctx context.Context) ([]Distributor, error) {
	s.log.DebugContext(ctx, "catalog operation", "op", "list_distributors")
	return s.storage.ListDistributors(ctx)
}

func (s *DistributorService) Get(ctx context.Context, id int64) (*Distributor, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid distributor id %d", ErrInvalidInput, id)
	}
	return s.storage.GetDistributor(ctx, id)
}

func (s *DistributorService) Create(ctx context.Context, req CreateDistributorRequest) (*Distributor, error) {
	name := cleanText(req.Name, 100)
	if name == "" {
		return nil, fmt.Errorf("%w: distributor name is required", ErrInvalidInput)
	}

	email := cleanText(req.Email, 100)
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}

	d := &Distributor{
		Name:    name,
		Contact: cleanText(req.Contact, 100),
		Phone:   cleanText(req.Phone, 20),
		Email:   email,
	}
	if err := s.storage.CreateDistributor(ctx, d); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "distributor created", "op", "create_distributor", "id", d.ID, "name", d.Name)
	return d, nil
}

func (s *DistributorService) Update(ctx context.Context, id int64, req CreateDistributorRequest) (*Distributor, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid distributor id %d", ErrInvalidInput, id)
	}

	name := cleanText(req.Name, 100)
	if name == "" {
		return nil, fmt.Errorf("%w: distributor name is required", ErrInvalidInput)
	}

	email := cleanText(req.Email, 100)
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}

	d := &Distributor{
		ID:      id,
		Name:    name,
		Contact: cleanText(req.Contact, 100),
		Phone:   cleanText(req.Phone, 20),
		Email:   email,
	}
	if err := s.storage.UpdateDistributor(ctx, d); err != nil {
		return nil, err
	}

	return s.storage.GetDistributor(ctx, id)
}

func (s *DistributorService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: invalid distributor id %d", ErrInvalidInput, id)
	}
	if err := s.storage.SoftDeleteDistributor(ctx, id); err != nil {
		return err
	}

	s.log.WarnContext(ctx, "distributor soft-deleted", "op", "delete_distributor", "id", id)
	return nil
}
