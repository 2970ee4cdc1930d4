package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gudang/internal/config"
	"gudang/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(driver, dsn string) config.Config {
	return config.Config{
		SecretKey:     "main_test_secret",
		SessionTTL:    time.Hour,
		SessionCookie: "session",
		StoreDriver:   driver,
		DatabaseDSN:   dsn,
	}
}

func TestSeedUsers(t *testing.T) {
	users, err := seedUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)

	roles := map[string]models.Role{}
	for i, u := range users {
		roles[u.Username] = u.Role
		assert.NotEqual(t, seedCredentials[i].password, u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(seedCredentials[i].password)))
	}
	assert.Equal(t, map[string]models.Role{"admin": models.RoleAdmin, "user1": models.RoleUser, "user2": models.RoleUser}, roles)
}

func TestOpenStores(t *testing.T) {
	users := []models.User{{Username: "admin", PasswordHash: "x", Role: models.RoleAdmin}}

	for _, cfg := range []config.Config{
		testConfig(config.DriverMemory, ""),
		testConfig(config.DriverSQLite, "file:main_test_stores?mode=memory&cache=shared"),
	} {
		t.Run(cfg.StoreDriver, func(t *testing.T) {
			userRepo, itemRepo, closeStores, err := openStores(cfg, users, discardLog)
			require.NoError(t, err)
			defer closeStores()

			u, ok, err := userRepo.GetByUsername("admin")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, models.RoleAdmin, u.Role)

			item := models.Item{Name: "Widget", Quantity: 1, Price: 1}
			require.NoError(t, itemRepo.Create(&item))
			assert.Equal(t, uint(1), item.ID)
		})
	}
}

func TestNewApp_HealthAndLogin(t *testing.T) {
	users, err := seedUsers()
	require.NoError(t, err)
	cfg := testConfig(config.DriverMemory, "")
	userRepo, itemRepo, closeStores, err := openStores(cfg, users, discardLog)
	require.NoError(t, err)
	defer closeStores()

	app := newApp(cfg, discardLog, userRepo, itemRepo, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"healthy"`)

	form := url.Values{"username": {"user2"}, "password": {"user2_password"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
