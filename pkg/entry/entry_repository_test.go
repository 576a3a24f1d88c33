package entry

import (
	"Cocktail-Catalog/entities"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.Entry{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestEntryRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := &entities.Entry{Name: "Old Fashioned", Ingredients: "Bourbon", Recipe: "Stir", CreatedAt: base}
	newer := &entities.Entry{Name: "Negroni", Ingredients: "Gin", Recipe: "Stir", CreatedAt: base.Add(time.Hour)}
	tieA := &entities.Entry{Name: "Tie A", Ingredients: "x", Recipe: "y", CreatedAt: base}

	require.NoError(t, repo.CreateEntry(ctx, older))
	require.NoError(t, repo.CreateEntry(ctx, newer))
	require.NoError(t, repo.CreateEntry(ctx, tieA))

	got, err := repo.GetEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, newer.ID, got[0].ID)
	// Same created_at: higher id first.
	assert.Equal(t, tieA.ID, got[1].ID)
	assert.Equal(t, older.ID, got[2].ID)
}

func TestEntryRepositoryIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	first := &entities.Entry{Name: "a", Ingredients: "b", Recipe: "c", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateEntry(ctx, first))
	require.NoError(t, repo.DeleteEntry(ctx, first.ID))

	second := &entities.Entry{Name: "a", Ingredients: "b", Recipe: "c", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateEntry(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestEntryRepositoryReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	row := &entities.Entry{
		Name:        "Daiquiri",
		Ingredients: "Rum, lime, sugar",
		Recipe:      "Shake",
		ImageRef:    strPtr("/uploads/daiquiri-1.png"),
		Comment:     strPtr("classic"),
		CreatedAt:   created,
	}
	require.NoError(t, repo.CreateEntry(ctx, row))

	err := repo.ReplaceEntry(ctx, &entities.Entry{
		ID:          row.ID,
		Name:        "Hemingway Daiquiri",
		Ingredients: "Rum, grapefruit, maraschino",
		Recipe:      "Shake hard",
	})
	require.NoError(t, err)

	got, err := repo.GetEntryByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hemingway Daiquiri", got.Name)
	assert.Equal(t, "Rum, grapefruit, maraschino", got.Ingredients)
	assert.Equal(t, "Shake hard", got.Recipe)
	assert.Nil(t, got.ImageRef)
	assert.Nil(t, got.Comment)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestEntryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	_, err := repo.GetEntryByID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.ReplaceEntry(ctx, &entities.Entry{ID: 99, Name: "a", Ingredients: "b", Recipe: "c"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.DeleteEntry(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.CountEntries(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestEntryRepositoryPostgresQueries(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "entries" ORDER BY created_at desc,\s*id desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "ingredients", "recipe", "image_ref", "comment", "created_at"}).
			AddRow(2, "Cold Soul", "Wodka, Ice, Herbs", "Shake", nil, "discuss the future", created).
			AddRow(1, "Hot Rüuski", "Wodka, Peat Moss, Pine Tar", "Mix", nil, nil, created))

	rows, err := repo.GetEntries(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
	require.NotNil(t, rows[0].Comment)
	assert.Equal(t, "discuss the future", *rows[0].Comment)
	assert.Nil(t, rows[1].Comment)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "entries" WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteEntry(ctx, 7), gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepositoryStorageFault(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db)

	fault := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "entries"`).WillReturnError(fault)

	_, err := repo.GetEntries(ctx)
	assert.ErrorIs(t, err, fault)
	require.NoError(t, mock.ExpectationsWereMet())
}
