package entry

import (
	"Cocktail-Catalog/entities"
	"context"

	"gorm.io/gorm"
)

type (
	EntryRepository interface {
		GetEntries(ctx context.Context) ([]*entities.Entry, error)
		GetEntryByID(ctx context.Context, id int64) (*entities.Entry, error)
		CountEntries(ctx context.Context) (int64, error)
		CreateEntry(ctx context.Context, entry *entities.Entry) error
		ReplaceEntry(ctx context.Context, entry *entities.Entry) error
		DeleteEntry(ctx context.Context, id int64) error
	}

	entryRepository struct {
		db *gorm.DB
	}
)

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) GetEntries(ctx context.Context) ([]*entities.Entry, error) {
	var entries []*entities.Entry
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) GetEntryByID(ctx context.Context, id int64) (*entities.Entry, error) {
	var entry entities.Entry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Entry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry *entities.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ReplaceEntry overwrites every mutable column. id and created_at are never
// written. Returns gorm.ErrRecordNotFound when no row matched.
func (r *entryRepository) ReplaceEntry(ctx context.Context, entry *entities.Entry) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Entry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"name":        entry.Name,
			"ingredients": entry.Ingredients,
			"recipe":      entry.Recipe,
			"image_ref":   nullable(entry.ImageRef),
			"comment":     nullable(entry.Comment),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
