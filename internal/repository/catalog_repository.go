package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/memovasquez/hydrant/internal/models"
)

// CatalogRepository serves pre-validated catalog records from Postgres. Each
// row stores one record as a JSONB payload keyed by catalog number; the
// ingestion pipeline that writes the table is external to this service.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs a Postgres-backed catalog source.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// List returns records matching the filter plus the unpaginated total.
func (r *CatalogRepository) List(ctx context.Context, filter models.CatalogFilter) ([]*models.RawClass, int, error) {
	base := "FROM catalog_classes WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Term != "" {
		conditions = append(conditions, fmt.Sprintf("term = $%d", len(args)+1))
		args = append(args, filter.Term)
	}
	if filter.Course != "" {
		conditions = append(conditions, fmt.Sprintf("course = $%d", len(args)+1))
		args = append(args, filter.Course)
	}
	if filter.Level != "" {
		conditions = append(conditions, fmt.Sprintf("payload->>'level' = $%d", len(args)+1))
		args = append(args, filter.Level)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(number) LIKE $%d OR LOWER(payload->>'name') LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}

	query := fmt.Sprintf("SELECT payload %s ORDER BY number %s LIMIT %d OFFSET %d", base, order, size, (page-1)*size)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*models.RawClass
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, 0, err
		}
		raw := &models.RawClass{}
		if err := json.Unmarshal(payload, raw); err != nil {
			return nil, 0, fmt.Errorf("decode catalog payload: %w", err)
		}
		records = append(records, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) " + base
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// FindByNumber returns one record, or sql.ErrNoRows when absent.
func (r *CatalogRepository) FindByNumber(ctx context.Context, number string) (*models.RawClass, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, "SELECT payload FROM catalog_classes WHERE number = $1", number)
	if err != nil {
		return nil, err
	}
	raw := &models.RawClass{}
	if err := json.Unmarshal(payload, raw); err != nil {
		return nil, fmt.Errorf("decode catalog payload: %w", err)
	}
	return raw, nil
}

// ErrNoRows re-exports the sentinel so services need not import database/sql.
var ErrNoRows = sql.ErrNoRows
