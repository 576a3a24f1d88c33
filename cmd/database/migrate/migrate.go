package migration

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"Cocktail-Catalog/pkg/entry"
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Entry{}); err != nil {
		return fmt.Errorf("migrating entries table: %w", err)
	}

	slog.Info("database migration complete")
	return nil
}

func sampleEntries() []domain.EntryRequest {
	hotComment := "A couple of these, you'll forget all your problems!"
	coldComment := "Have one or six of these, and discuss the future!"
	return []domain.EntryRequest{
		{
			Name:        "Hot Rüuski",
			Ingredients: "Wodka, Peat Moss, Pine Tar",
			Recipe:      "Take your ingredients, mix, serve",
			Comment:     &hotComment,
		},
		{
			Name:        "Cold Soul",
			Ingredients: "Wodka, Ice, Herbs",
			Recipe:      "Gather your ingredients, combine, shake, serve over ice",
			Comment:     &coldComment,
		},
	}
}

// Seed inserts the sample cocktails when the entries table is empty and
// reports how many rows were added.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	repo := entry.NewEntryRepository(db)
	count, err := repo.CountEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking entries table: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	svc := entry.NewEntryService(repo)
	for i, req := range sampleEntries() {
		if _, err := svc.CreateEntry(ctx, req); err != nil {
			return i, fmt.Errorf("importing sample entry %q: %w", req.Name, err)
		}
	}

	slog.Info("sample entries imported", "count", len(sampleEntries()))
	return len(sampleEntries()), nil
}
