package entry

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	EntryService interface {
		GetEntries(ctx context.Context) ([]domain.Entry, error)
		GetEntryByID(ctx context.Context, id int64) (domain.Entry, error)
		CreateEntry(ctx context.Context, req domain.EntryRequest) (domain.Entry, error)
		UpdateEntry(ctx context.Context, id int64, req domain.EntryRequest) error
		DeleteEntry(ctx context.Context, id int64) error
	}

	entryService struct {
		entryRepository EntryRepository
		now             func() time.Time
	}
)

func NewEntryService(entryRepository EntryRepository) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		now:             time.Now,
	}
}

func (s *entryService) GetEntries(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.entryRepository.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}
	return entries, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, id int64) (domain.Entry, error) {
	row, err := s.entryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Entry{}, domain.ErrEntryNotFound
		}
		return domain.Entry{}, err
	}
	return row.ToDomain(), nil
}

func (s *entryService) CreateEntry(ctx context.Context, req domain.EntryRequest) (domain.Entry, error) {
	if !req.HasRequiredFields() {
		return domain.Entry{}, domain.ErrEntryFieldsRequired
	}
	req = req.Normalize()

	row := &entities.Entry{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		ImageRef:    req.ImageRef,
		Comment:     req.Comment,
		// Postgres keeps microseconds, so anything finer would not survive a round trip.
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.entryRepository.CreateEntry(ctx, row); err != nil {
		return domain.Entry{}, err
	}

	// Read back so the response matches what a later GET returns.
	return s.GetEntryByID(ctx, row.ID)
}

func (s *entryService) UpdateEntry(ctx context.Context, id int64, req domain.EntryRequest) error {
	if !req.HasRequiredFields() {
		return domain.ErrEntryFieldsRequired
	}
	req = req.Normalize()

	err := s.entryRepository.ReplaceEntry(ctx, &entities.Entry{
		ID:          id,
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		ImageRef:    req.ImageRef,
		Comment:     req.Comment,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrEntryNotFound
	}
	return err
}

func (s *entryService) DeleteEntry(ctx context.Context, id int64) error {
	err := s.entryRepository.DeleteEntry(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrEntryNotFound
	}
	return err
}
