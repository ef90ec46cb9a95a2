package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestReportCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewReportCacheRepository(rdb, 2*time.Second)
	books := []models.BookLoanCount{{ISBN: "111", Title: "Dune", Author: "Frank Herbert", LoanCount: 3}}
	current := func() int64 {
		gen, err := repo.Generation(ctx)
		require.NoError(t, err)
		return gen
	}

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "most-loaned", current(), books))

		var got []models.BookLoanCount
		ok, err := repo.Get(ctx, "most-loaned", &got)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, books, got)
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		var got []models.BookLoanCount
		ok, err := repo.Get(ctx, "nothing-here", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate drops every report", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "most-loaned", current(), books))
		require.NoError(t, repo.Set(ctx, "with-overdue", current(), []models.User{{ID: 1}}))
		require.NoError(t, rdb.Set(ctx, "unrelated", "keep", 0).Err())

		require.NoError(t, repo.Invalidate(ctx))

		var got []models.BookLoanCount
		ok, err := repo.Get(ctx, "most-loaned", &got)
		assert.NoError(t, err)
		assert.False(t, ok)

		val, err := rdb.Get(ctx, "unrelated").Result()
		assert.NoError(t, err)
		assert.Equal(t, "keep", val)
	})

	t.Run("generation grows on invalidate", func(t *testing.T) {
		before := current()
		require.NoError(t, repo.Invalidate(ctx))
		assert.Equal(t, before+1, current())
	})

	t.Run("report from an older generation is not stored", func(t *testing.T) {
		stale := current()
		require.NoError(t, repo.Invalidate(ctx))

		require.NoError(t, repo.Set(ctx, "most-loaned", stale, books))

		var got []models.BookLoanCount
		ok, err := repo.Get(ctx, "most-loaned", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cached value expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short-lived", current(), books))
		time.Sleep(3 * time.Second)

		var got []models.BookLoanCount
		ok, err := repo.Get(ctx, "short-lived", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
