package repositories_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite/internal/models"
	"shoplite/internal/repositories"
)

func TestMemoryUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	first := models.User{Username: "alice", PasswordHash: "h1"}
	require.NoError(t, repo.Create(&first))
	second := models.User{Username: "bob", PasswordHash: "h2"}
	require.NoError(t, repo.Create(&second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryUserRepository_DuplicateUsername(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	original := models.User{Username: "alice", Name: "Alice", PasswordHash: "h1"}
	require.NoError(t, repo.Create(&original))

	dup := models.User{Username: "alice", Name: "Impostor", PasswordHash: "h2"}
	err := repo.Create(&dup)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// First record must be untouched.
	stored, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryUserRepository_ConcurrentCreates_UniqueIDs(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	const n = 100
	users := make([]models.User, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			users[i] = models.User{Username: fmt.Sprintf("user-%d", i)}
			_ = repo.Create(&users[i])
		}(i)
	}
	wg.Wait()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)

	seen := make(map[int64]bool, n)
	for _, u := range users {
		assert.False(t, seen[u.ID], "id %d assigned twice", u.ID)
		seen[u.ID] = true
		assert.GreaterOrEqual(t, u.ID, int64(1))
		assert.LessOrEqual(t, u.ID, int64(n))
	}
}

func TestMemoryUserRepository_GetByUsername_NotFound(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	_, err := repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryOrderRepository_SequentialOrderIDs(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	for i := 1; i <= 3; i++ {
		order := models.Order{User: "alice", Total: decimal.NewFromFloat(1.00)}
		require.NoError(t, repo.Create(&order))
		assert.Equal(t, fmt.Sprintf("o-%d", i), order.OrderID)
	}
}

func TestMemoryOrderRepository_ConcurrentCreates_UniqueIDs(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	const n = 100
	orders := make([]models.Order, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			orders[i] = models.Order{User: "alice"}
			_ = repo.Create(&orders[i])
		}(i)
	}
	wg.Wait()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)

	seen := make(map[string]bool, n)
	for _, o := range orders {
		assert.False(t, seen[o.OrderID], "order id %s assigned twice", o.OrderID)
		seen[o.OrderID] = true
	}
}

func TestMemoryOrderRepository_ListByUser_InsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	for _, user := range []string{"alice", "bob", "alice", "alice"} {
		order := models.Order{User: user}
		require.NoError(t, repo.Create(&order))
	}

	aliceOrders, err := repo.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, aliceOrders, 3)
	assert.Equal(t, "o-1", aliceOrders[0].OrderID)
	assert.Equal(t, "o-3", aliceOrders[1].OrderID)
	assert.Equal(t, "o-4", aliceOrders[2].OrderID)

	empty, err := repo.ListByUser("ghost")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryProductRepository_SeedAndLookup(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Seed(models.Catalog()))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p3", all[2].ID)

	p, err := repo.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(59.49)))

	_, err = repo.GetByID("p99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
