package repositories_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database with the full schema.
// The database is named after the test so connections from the pool share
// it while tests stay isolated from each other.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderLine{}, &models.User{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func TestGORMProductRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))

	product := &models.Product{Name: "Produit 1", Description: "Description du produit 1", Price: 1.20, Quantity: 20}
	assert.NoError(t, repo.Create(product))
	assert.NotZero(t, product.ID)

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Produit 1", fetched.Name)
	assert.Equal(t, 1.20, fetched.Price)
	assert.Equal(t, 20, fetched.Quantity)
}

func TestGORMProductRepository_GetAllCountsSaves(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))

	names := []string{"Produit 1", "Produit 2", "Produit 3"}
	for _, name := range names {
		assert.NoError(t, repo.Create(&models.Product{Name: name, Price: 10, Quantity: 5}))
	}

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, len(names))
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestGORMProductRepository_ContextVariants(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))

	product := &models.Product{Name: "Produit 1", Price: 1.20, Quantity: 20}
	assert.NoError(t, repo.Create(product))

	ctx := context.Background()
	products, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	fetched, err := repo.FindByID(ctx, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_Update(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))

	product := &models.Product{Name: "Produit 1", Price: 1.20, Quantity: 20}
	assert.NoError(t, repo.Create(product))

	product.Quantity = 18
	product.Price = 1.50
	assert.NoError(t, repo.Update(product))

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 18, fetched.Quantity)
	assert.Equal(t, 1.50, fetched.Price)
}

func TestGORMProductRepository_DeleteThenGetIsAbsent(t *testing.T) {
	repo := repositories.NewGORMProductRepository(setupDB(t))

	product := &models.Product{Name: "Produit 1", Price: 1.20, Quantity: 20}
	assert.NoError(t, repo.Create(product))

	assert.NoError(t, repo.Delete(product.ID))

	_, err := repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrProductNotFound)
}

func TestGORMOrderRepository_CreateWithLines(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupDB(t))

	order := &models.Order{
		Reference: "ref-1",
		Name:      "Jean Dupont",
		Address:   "1 rue de la Paix",
		City:      "Paris",
		Zip:       "75001",
		Country:   "France",
		Total:     2.40,
		Lines: []models.OrderLine{
			{ProductID: 1, ProductName: "Produit 1", ProductPrice: 1.20, Quantity: 2},
		},
	}
	assert.NoError(t, repo.Create(order))
	assert.NotZero(t, order.ID)

	fetched, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ref-1", fetched.Reference)
	assert.Len(t, fetched.Lines, 1)
	assert.Equal(t, "Produit 1", fetched.Lines[0].ProductName)
	assert.Equal(t, order.ID, fetched.Lines[0].OrderID)

	orders, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	user := &models.User{Username: "admin", Email: "admin@example.com", Password: "hash"}
	assert.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername("admin")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail("admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	_, err = repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
