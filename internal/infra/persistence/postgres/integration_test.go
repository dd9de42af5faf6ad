//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway PostgreSQL container and migrates the
// catalog and order tables into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err, "failed to open gorm connection")

	// The stock image ships without the pg_uuidv7 extension, so the column
	// defaults resolve against this stand-in instead.
	require.NoError(t, db.Exec(
		`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE SQL`,
	).Error)

	require.NoError(t, db.AutoMigrate(
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, stock int, active bool) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:        "Audífonos de prueba",
		Description: "Producto de integración",
		Price:       19990,
		Stock:       stock,
		IsActive:    active,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func createTestOrder(t *testing.T, db *gorm.DB, product *entity.Product, qty int) *entity.Order {
	t.Helper()

	order := &entity.Order{
		CustomerEmail: "invitado@example.com",
		Total:         product.Price * qty,
		Status:        entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductID: product.ID, Qty: qty, PriceSnapshot: product.Price},
		},
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}

func currentStock(t *testing.T, db *gorm.DB, id any) int {
	t.Helper()

	var stock int
	require.NoError(t, db.Model(&model.ProductModel{}).
		Where("id = ?", id).
		Pluck("stock", &stock).Error)

	return stock
}

func TestProductRepository_DecrementStock_Guard(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	product := createTestProduct(t, db, 5, true)

	require.NoError(t, repo.DecrementStock(ctx, product.ID, 3))
	assert.Equal(t, 2, currentStock(t, db, product.ID))

	// Only 2 left; reserving 3 must fail without touching the row.
	err := repo.DecrementStock(ctx, product.ID, 3)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Equal(t, 2, currentStock(t, db, product.ID))
}

func TestProductRepository_DecrementStock_InactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	product := createTestProduct(t, db, 10, false)

	err := repo.DecrementStock(ctx, product.ID, 1)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Equal(t, 10, currentStock(t, db, product.ID))
}

func TestTransactionManager_RollbackLeavesStockUntouched(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	cheap := createTestProduct(t, db, 5, true)
	scarce := createTestProduct(t, db, 1, true)

	// A two-line checkout where the second line oversells: the first
	// decrement must be rolled back along with everything else.
	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		products := factory.NewProductRepository()

		if err := products.DecrementStock(ctx, cheap.ID, 2); err != nil {
			return err
		}

		return products.DecrementStock(ctx, scarce.ID, 3)
	})

	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Equal(t, 5, currentStock(t, db, cheap.ID))
	assert.Equal(t, 1, currentStock(t, db, scarce.ID))
}

func TestOrderRepository_MarkCancelled_ExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	product := createTestProduct(t, db, 5, true)
	order := createTestOrder(t, db, product, 2)

	expired := entity.PaymentStatusExpired

	cancelled, err := repo.MarkCancelled(ctx, order.ID, &expired)
	require.NoError(t, err)
	assert.True(t, cancelled)

	// A replayed callback loses the guard and must report no transition.
	cancelled, err = repo.MarkCancelled(ctx, order.ID, &expired)
	require.NoError(t, err)
	assert.False(t, cancelled)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, found.Status)
}

func TestOrderRepository_MarkCancelled_PaidOrderKeepsStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	product := createTestProduct(t, db, 5, true)
	order := createTestOrder(t, db, product, 1)

	paid, err := repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, paid)

	expired := entity.PaymentStatusExpired
	cancelled, err := repo.MarkCancelled(ctx, order.ID, &expired)
	require.NoError(t, err)
	assert.False(t, cancelled)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, found.Status)
}

func TestOrderRepository_MarkPaid_CancelledOrderStaysCancelled(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	product := createTestProduct(t, db, 5, true)
	order := createTestOrder(t, db, product, 1)

	expired := entity.PaymentStatusExpired
	cancelled, err := repo.MarkCancelled(ctx, order.ID, &expired)
	require.NoError(t, err)
	require.True(t, cancelled)

	// A payment authorized just after the sweep must not resurrect the
	// order whose stock was already restored.
	paid, err := repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, paid)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, found.Status)
}

func TestOrderRepository_ListStalePending(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	product := createTestProduct(t, db, 10, true)
	stale := createTestOrder(t, db, product, 1)
	fresh := createTestOrder(t, db, product, 1)
	paid := createTestOrder(t, db, product, 1)

	wasPending, err := repo.MarkPaid(ctx, paid.ID)
	require.NoError(t, err)
	require.True(t, wasPending)

	// Backdate one order past the reservation window.
	require.NoError(t, db.Model(&model.OrderModel{}).
		Where("id = ?", stale.ID).
		UpdateColumn("created_at", time.Now().Add(-2*time.Hour)).Error)

	orders, err := repo.ListStalePending(ctx, time.Now().Add(-time.Hour), 50)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, stale.ID, orders[0].ID)
	assert.NotEqual(t, fresh.ID, orders[0].ID)
}
