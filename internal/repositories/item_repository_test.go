package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a private in-memory SQLite database for a single test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}, &models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// itemRepositories returns one fresh instance of every ItemRepository implementation.
func itemRepositories(t *testing.T) map[string]repositories.ItemRepository {
	return map[string]repositories.ItemRepository{
		"memory": repositories.NewMemoryItemRepository(),
		"gorm":   repositories.NewGORMItemRepository(openTestDB(t)),
	}
}

func mustCreate(t *testing.T, repo repositories.ItemRepository, name string, qty int, price float64) models.Item {
	t.Helper()
	item := models.Item{Name: name, Quantity: qty, Price: price}
	require.NoError(t, repo.Create(&item))
	return item
}

func TestItemRepository_IDsNeverReused(t *testing.T) {
	for name, repo := range itemRepositories(t) {
		t.Run(name, func(t *testing.T) {
			a := mustCreate(t, repo, "Widget", 10, 2.5)
			b := mustCreate(t, repo, "Gadget", 3, 9.99)
			assert.Equal(t, uint(1), a.ID)
			assert.Greater(t, b.ID, a.ID)

			require.NoError(t, repo.Delete(b.ID))
			c := mustCreate(t, repo, "Gizmo", 1, 1)
			assert.Greater(t, c.ID, b.ID, "deleted ID must not be handed out again")

			require.NoError(t, repo.Delete(a.ID))
			require.NoError(t, repo.Delete(c.ID))
			d := mustCreate(t, repo, "Doohickey", 0, 0)
			assert.Greater(t, d.ID, c.ID)
		})
	}
}

func TestItemRepository_GetAllKeepsInsertionOrder(t *testing.T) {
	for name, repo := range itemRepositories(t) {
		t.Run(name, func(t *testing.T) {
			items, err := repo.GetAll()
			require.NoError(t, err)
			assert.Empty(t, items)

			mustCreate(t, repo, "first", 1, 1)
			second := mustCreate(t, repo, "second", 2, 2)
			mustCreate(t, repo, "third", 3, 3)
			require.NoError(t, repo.Delete(second.ID))
			mustCreate(t, repo, "fourth", 4, 4)

			items, err = repo.GetAll()
			require.NoError(t, err)
			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.Name)
			}
			assert.Equal(t, []string{"first", "third", "fourth"}, names)
		})
	}
}

func TestItemRepository_GetByID(t *testing.T) {
	for name, repo := range itemRepositories(t) {
		t.Run(name, func(t *testing.T) {
			created := mustCreate(t, repo, "Widget", 10, 2.5)

			got, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			assert.Equal(t, created, *got)

			got, err = repo.GetByID(created.ID + 100)
			assert.ErrorIs(t, err, repositories.ErrItemNotFound)
			assert.Nil(t, got)
		})
	}
}

func TestItemRepository_Update(t *testing.T) {
	for name, repo := range itemRepositories(t) {
		t.Run(name, func(t *testing.T) {
			created := mustCreate(t, repo, "Widget", 10, 2.5)

			err := repo.Update(&models.Item{ID: created.ID, Name: "Sprocket", Quantity: 0, Price: 0})
			require.NoError(t, err)
			got, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			assert.Equal(t, models.Item{ID: created.ID, Name: "Sprocket", Quantity: 0, Price: 0}, *got)

			before, err := repo.GetAll()
			require.NoError(t, err)
			err = repo.Update(&models.Item{ID: created.ID + 100, Name: "ghost", Quantity: 1, Price: 1})
			assert.ErrorIs(t, err, repositories.ErrItemNotFound)
			after, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, before, after, "failed update must not mutate anything")
		})
	}
}

func TestItemRepository_Delete(t *testing.T) {
	for name, repo := range itemRepositories(t) {
		t.Run(name, func(t *testing.T) {
			keep := mustCreate(t, repo, "keep", 1, 1)
			drop := mustCreate(t, repo, "drop", 2, 2)

			require.NoError(t, repo.Delete(drop.ID))
			_, err := repo.GetByID(drop.ID)
			assert.ErrorIs(t, err, repositories.ErrItemNotFound)

			err = repo.Delete(drop.ID)
			assert.ErrorIs(t, err, repositories.ErrItemNotFound)

			items, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []models.Item{keep}, items)
		})
	}
}

func TestMemoryItemRepository_ReturnsCopies(t *testing.T) {
	repo := repositories.NewMemoryItemRepository()
	created := mustCreate(t, repo, "Widget", 10, 2.5)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	items, err := repo.GetAll()
	require.NoError(t, err)
	items[0].Quantity = 999

	again, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", again.Name)
	assert.Equal(t, 10, again.Quantity)
}
