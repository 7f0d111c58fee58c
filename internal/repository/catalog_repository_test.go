package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memovasquez/hydrant/internal/models"
)

func newCatalogRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCatalogRepositoryList(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	payload := `{"number":"6.006","course":"6","name":"Introduction to Algorithms","section_kinds":["lecture"]}`
	rows := sqlmock.NewRows([]string{"payload"}).AddRow([]byte(payload))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM catalog_classes WHERE 1=1 ORDER BY number ASC LIMIT 20 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM catalog_classes WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	records, total, err := repo.List(context.Background(), models.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "6.006", records[0].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryListFiltered(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM catalog_classes WHERE 1=1 AND term = $1 AND course = $2 AND (LOWER(number) LIKE $3 OR LOWER(payload->>'name') LIKE $3) ORDER BY number ASC LIMIT 10 OFFSET 10")).
		WithArgs("FA", "6", "%algo%").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM catalog_classes WHERE 1=1 AND term = $1 AND course = $2")).
		WithArgs("FA", "6", "%algo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	records, total, err := repo.List(context.Background(), models.CatalogFilter{
		Term:   "FA",
		Course: "6",
		Search: "Algo",
		Page:   2, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindByNumber(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	payload := `{"number":"18.03","course":"18","name":"Differential Equations"}`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM catalog_classes WHERE number = $1")).
		WithArgs("18.03").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(payload)))

	record, err := repo.FindByNumber(context.Background(), "18.03")
	require.NoError(t, err)
	assert.Equal(t, "Differential Equations", record.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindByNumberMissing(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM catalog_classes WHERE number = $1")).
		WithArgs("nope").
		WillReturnError(ErrNoRows)

	_, err := repo.FindByNumber(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoRows)
}
