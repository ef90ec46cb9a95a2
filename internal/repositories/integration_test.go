package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/migrations"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "library", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/library?sslmode=disable", host, port.Port())
	require.NoError(t, migrations.Up(dsn))

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`INSERT INTO users (name, identification, email, phone) VALUES
		('Ana', '1001', 'ana@example.com', '555-0001'),
		('Ben', '1002', 'ben@example.com', '555-0002'),
		('Cid', '1003', 'cid@example.com', '555-0003')`)
	db.MustExec(`INSERT INTO books (isbn, title, author, release_year) VALUES
		('111', 'Dune', 'Frank Herbert', 1965),
		('222', 'Emma', 'Jane Austen', 1815),
		('333', 'Ulysses', 'James Joyce', 1922),
		('444', 'Beloved', 'Toni Morrison', 1987),
		('555', 'Solaris', 'Stanislaw Lem', 1961),
		('666', 'Hamlet', 'William Shakespeare', 1603)`)

	return db
}

func userID(t *testing.T, db *sqlx.DB, identification string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.Get(&id, `SELECT id_user FROM users WHERE identification = $1`, identification))
	return id
}

func TestLoanRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reader := NewLoanReadRepository(db)
	writer := NewLoanWriteRepository(db)
	ana := userID(t, db, "1001")
	ben := userID(t, db, "1002")

	t.Run("create then get returns the input fields", func(t *testing.T) {
		req := models.LoanRequest{UserID: ana, ISBN: "111", LoanDate: "2024-01-01", Status: models.StatusCheckedOut}

		rec, err := writer.Create(ctx, req)
		require.NoError(t, err)
		assert.NotZero(t, rec.ID)
		assert.Equal(t, req, rec.LoanRequest)

		got, err := reader.GetByID(ctx, fmt.Sprint(rec.ID))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.Loan{ID: rec.ID, UserID: ana, ISBN: "111", LoanDate: "2024-01-01", Status: models.StatusCheckedOut}, *got)
	})

	t.Run("unknown id is not found for get, update and delete", func(t *testing.T) {
		for _, id := range []string{"999999", "99999999999999999999"} {
			got, err := reader.GetByID(ctx, id)
			assert.NoError(t, err)
			assert.Nil(t, got)

			rec, err := writer.UpdateByID(ctx, id, models.LoanRequest{UserID: ana, ISBN: "111", LoanDate: "2024-01-01", Status: "returned"})
			assert.NoError(t, err)
			assert.Nil(t, rec)

			ok, err := writer.DeleteByID(ctx, id)
			assert.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("malformed id surfaces the store error", func(t *testing.T) {
		_, err := reader.GetByID(ctx, "abc")
		assert.Error(t, err)
	})

	t.Run("unknown user violates the foreign key", func(t *testing.T) {
		_, err := writer.Create(ctx, models.LoanRequest{UserID: 999999, ISBN: "111", LoanDate: "2024-01-01", Status: "checked out"})
		assert.Error(t, err)
	})

	t.Run("update overwrites every field", func(t *testing.T) {
		rec, err := writer.Create(ctx, models.LoanRequest{UserID: ana, ISBN: "222", LoanDate: "2024-02-01", Status: models.StatusCheckedOut})
		require.NoError(t, err)

		returned := "2024-02-20"
		upd := models.LoanRequest{UserID: ben, ISBN: "333", LoanDate: "2024-02-02", ReturnDate: &returned, Status: models.StatusReturned}
		updated, err := writer.UpdateByID(ctx, fmt.Sprint(rec.ID), upd)
		require.NoError(t, err)
		assert.Equal(t, &models.LoanRecord{ID: rec.ID, LoanRequest: upd}, updated)

		got, err := reader.GetByID(ctx, fmt.Sprint(rec.ID))
		require.NoError(t, err)
		assert.Equal(t, ben, got.UserID)
		assert.Equal(t, "333", got.ISBN)
		assert.Equal(t, &returned, got.ReturnDate)
		assert.Equal(t, models.StatusReturned, got.Status)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		rec, err := writer.Create(ctx, models.LoanRequest{UserID: ana, ISBN: "444", LoanDate: "2024-03-01", Status: models.StatusCheckedOut})
		require.NoError(t, err)
		id := fmt.Sprint(rec.ID)

		ok, err := writer.DeleteByID(ctx, id)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = writer.DeleteByID(ctx, id)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("active loans are exactly the checked out subset", func(t *testing.T) {
		for _, status := range []string{models.StatusOverdue, models.StatusReturned, "lost", models.StatusCheckedOut} {
			_, err := writer.Create(ctx, models.LoanRequest{UserID: ben, ISBN: "555", LoanDate: "2024-04-01", Status: status})
			require.NoError(t, err)
		}

		all, err := reader.List(ctx)
		require.NoError(t, err)
		active, err := reader.ListByStatus(ctx, models.StatusCheckedOut)
		require.NoError(t, err)

		var want []models.Loan
		for _, l := range all {
			if l.Status == models.StatusCheckedOut {
				want = append(want, l)
			}
		}
		assert.Equal(t, want, active)
	})

	t.Run("filters by user and isbn", func(t *testing.T) {
		byUser, err := reader.ListByUserID(ctx, fmt.Sprint(ben))
		require.NoError(t, err)
		for _, l := range byUser {
			assert.Equal(t, ben, l.UserID)
		}

		none, err := reader.ListByUserID(ctx, "999999")
		require.NoError(t, err)
		assert.Empty(t, none)

		history, err := reader.ListByISBN(ctx, "555")
		require.NoError(t, err)
		assert.Len(t, history, 4)
	})
}

func TestReportRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	writer := NewLoanWriteRepository(db)
	ana := userID(t, db, "1001")
	ben := userID(t, db, "1002")
	cid := userID(t, db, "1003")

	create := func(user int64, isbn, status string, n int) {
		for i := 0; i < n; i++ {
			_, err := writer.Create(ctx, models.LoanRequest{UserID: user, ISBN: isbn, LoanDate: "2024-05-01", Status: status})
			require.NoError(t, err)
		}
	}
	create(ana, "111", models.StatusOverdue, 3)
	create(ana, "222", models.StatusOverdue, 1)
	create(ben, "222", models.StatusReturned, 4)
	create(cid, "333", models.StatusCheckedOut, 2)
	create(cid, "444", models.StatusCheckedOut, 2)
	create(ben, "555", models.StatusOverdue, 1)
	create(cid, "666", models.StatusReturned, 1)

	t.Run("most loaned books", func(t *testing.T) {
		books, err := NewBookReadRepository(db).ListMostLoaned(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, books, 5)
		assert.Equal(t, "222", books[0].ISBN)
		assert.Equal(t, int64(5), books[0].LoanCount)
		for i := 1; i < len(books); i++ {
			assert.GreaterOrEqual(t, books[i-1].LoanCount, books[i].LoanCount)
		}
		// 333 and 444 tie at two loans and are ordered by isbn.
		assert.Equal(t, []string{"333", "444"}, []string{books[2].ISBN, books[3].ISBN})
	})

	t.Run("users with overdue loans appear once", func(t *testing.T) {
		users, err := NewUserReadRepository(db).ListWithLoanStatus(ctx, models.StatusOverdue)
		require.NoError(t, err)

		var ids []int64
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		assert.Equal(t, []int64{ana, ben}, ids)
	})
}
