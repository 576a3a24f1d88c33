package config

import (
	"Cocktail-Catalog/internal/utils"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsLoopback(t *testing.T) {
	for ip, want := range map[string]bool{
		"127.0.0.1":   true,
		"127.0.0.53":  true,
		"::1":         true,
		"0.0.0.0":     false,
		"10.0.0.7":    false,
		"2001:db8::1": false,
		"":            false,
	} {
		assert.Equal(t, want, isLoopback(ip), ip)
	}
}

func TestRateLimitAppliesToRemoteClients(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	app, err := NewApp(context.Background(), db, utils.Config{
		RateLimit:     1,
		StorageDriver: "local",
		UploadDir:     t.TempDir(),
	}, Options{AccessLog: io.Discard, DisablePages: true})
	require.NoError(t, err)

	// app.Test connections come from 0.0.0.0, which is not loopback.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}
	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
}
