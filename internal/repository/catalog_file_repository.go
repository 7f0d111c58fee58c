package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/memovasquez/hydrant/internal/models"
)

// CatalogFileRepository serves the catalog from a JSON snapshot file: a
// top-level array of raw class records. The snapshot is read once at startup
// and held in memory; records are immutable afterwards.
type CatalogFileRepository struct {
	records  []*models.RawClass
	byNumber map[string]*models.RawClass
}

// NewCatalogFileRepository loads and indexes the snapshot.
func NewCatalogFileRepository(path string) (*CatalogFileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}
	return NewCatalogFileRepositoryFromBytes(data)
}

// NewCatalogFileRepositoryFromBytes builds the repository from raw snapshot
// bytes; used by tests and embedded snapshots.
func NewCatalogFileRepositoryFromBytes(data []byte) (*CatalogFileRepository, error) {
	var records []*models.RawClass
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Number < records[j].Number })

	byNumber := make(map[string]*models.RawClass, len(records))
	for _, record := range records {
		byNumber[record.Number] = record
	}

	return &CatalogFileRepository{records: records, byNumber: byNumber}, nil
}

// Len reports how many records the snapshot holds.
func (r *CatalogFileRepository) Len() int {
	return len(r.records)
}

// List filters and paginates in memory, mirroring the Postgres semantics.
func (r *CatalogFileRepository) List(ctx context.Context, filter models.CatalogFilter) ([]*models.RawClass, int, error) {
	search := strings.ToLower(filter.Search)

	var matched []*models.RawClass
	for _, record := range r.records {
		if filter.Course != "" && record.Course != filter.Course {
			continue
		}
		if filter.Term != "" && !hasTermCode(record.Terms, filter.Term) {
			continue
		}
		if filter.Level != "" && record.Level != filter.Level {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Number), search) &&
			!strings.Contains(strings.ToLower(record.Name), search) {
			continue
		}
		matched = append(matched, record)
	}

	if strings.EqualFold(filter.SortOrder, "DESC") {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}

	total := len(matched)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	offset := (page - 1) * size
	if offset >= total {
		return nil, total, nil
	}
	end := offset + size
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// FindByNumber returns one record, or ErrNoRows when absent.
func (r *CatalogFileRepository) FindByNumber(ctx context.Context, number string) (*models.RawClass, error) {
	record, ok := r.byNumber[number]
	if !ok {
		return nil, ErrNoRows
	}
	return record, nil
}

func hasTermCode(terms []string, code string) bool {
	for _, term := range terms {
		if strings.EqualFold(term, code) {
			return true
		}
	}
	return false
}
