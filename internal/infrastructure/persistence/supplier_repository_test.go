package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockSupplierRepository(t *testing.T) (*GormSupplierRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormSupplierRepository(gormDB), mock, mockDB
}

func supplierColumns() []string {
	return []string{"id", "version", "name", "slug", "email", "url", "tax_id", "active"}
}

func TestNewGormSupplierRepository(t *testing.T) {
	repo, _, mockDB := newMockSupplierRepository(t)
	defer mockDB.Close()

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestGormSupplierRepository_FindByID(t *testing.T) {
	t.Run("finds existing supplier", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		supplierID := uuid.New()

		rows := sqlmock.NewRows(supplierColumns()).
			AddRow(supplierID, 1, "Acme Corp", "acme-corp", "sales@acme.test", "http://acme.test", "12345", true)

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(supplierID, 1).
			WillReturnRows(rows)

		// Users preload hits the join table
		mock.ExpectQuery(`SELECT \* FROM "supplier_users" WHERE .*`).
			WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "user_id"}))

		s, err := repo.FindByID(context.Background(), supplierID)

		assert.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, supplierID, s.ID)
		assert.Equal(t, "acme-corp", s.Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing supplier", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(supplierID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		s, err := repo.FindByID(context.Background(), supplierID)

		assert.Nil(t, s)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_FindBySlug(t *testing.T) {
	repo, mock, mockDB := newMockSupplierRepository(t)
	defer mockDB.Close()

	supplierID := uuid.New()

	rows := sqlmock.NewRows(supplierColumns()).
		AddRow(supplierID, 1, "Acme Corp", "acme-corp", "sales@acme.test", "", "", true)

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("acme-corp", 1).
		WillReturnRows(rows)

	mock.ExpectQuery(`SELECT \* FROM "supplier_users" WHERE .*`).
		WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "user_id"}))

	s, err := repo.FindBySlug(context.Background(), "acme-corp")

	assert.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Acme Corp", s.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_ExistsByName(t *testing.T) {
	t.Run("returns true when a row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE name = \$1`).
			WithArgs("Acme Corp").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByName(context.Background(), "Acme Corp")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE name = \$1`).
			WithArgs("Nobody").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByName(context.Background(), "Nobody")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_ExistsBySlug(t *testing.T) {
	repo, mock, mockDB := newMockSupplierRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE slug = \$1`).
		WithArgs("acme-corp").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsBySlug(context.Background(), "acme-corp")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Count(t *testing.T) {
	t.Run("excludes soft-deleted rows by default", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE deleted_at IS NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.Count(context.Background(), shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_Delete(t *testing.T) {
	t.Run("deletes existing supplier", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		supplierID := uuid.New()

		mock.ExpectExec(`DELETE FROM "suppliers" WHERE id = \$1`).
			WithArgs(supplierID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), supplierID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockSupplierRepository(t)
		defer mockDB.Close()

		supplierID := uuid.New()

		mock.ExpectExec(`DELETE FROM "suppliers" WHERE id = \$1`).
			WithArgs(supplierID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), supplierID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
