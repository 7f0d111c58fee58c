package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memovasquez/hydrant/internal/models"
)

const snapshotFixture = `[
	{"number":"8.01","course":"8","name":"Classical Mechanics","level":"U","terms":["FA"],"section_kinds":["lecture","recitation"],
	 "lecture_sections":[[[[2,3]],"26-152"]],"recitation_sections":[[[[34,1]],"26-268"]]},
	{"number":"6.006","course":"6","name":"Introduction to Algorithms","level":"U","terms":["FA","SP"],"section_kinds":["lecture"],
	 "lecture_sections":[[[[4,2],[64,2]],"26-100"]]},
	{"number":"6.840","course":"6","name":"Theory of Computation","level":"G","terms":["FA"],"section_kinds":["lecture"],
	 "lecture_sections":[[[[10,3]],"34-101"]]}
]`

func newFileRepo(t *testing.T) *CatalogFileRepository {
	repo, err := NewCatalogFileRepositoryFromBytes([]byte(snapshotFixture))
	require.NoError(t, err)
	return repo
}

func TestCatalogFileRepositoryListSorted(t *testing.T) {
	repo := newFileRepo(t)
	require.Equal(t, 3, repo.Len())

	records, total, err := repo.List(context.Background(), models.CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 3)
	assert.Equal(t, "6.006", records[0].Number, "snapshot is indexed in number order")
	assert.Equal(t, "8.01", records[2].Number)
}

func TestCatalogFileRepositoryFilters(t *testing.T) {
	repo := newFileRepo(t)

	records, total, err := repo.List(context.Background(), models.CatalogFilter{Course: "6"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, records, 2)

	records, _, err = repo.List(context.Background(), models.CatalogFilter{Level: "G"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "6.840", records[0].Number)

	records, _, err = repo.List(context.Background(), models.CatalogFilter{Search: "mechanics"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "8.01", records[0].Number)

	records, _, err = repo.List(context.Background(), models.CatalogFilter{Term: "SP"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "6.006", records[0].Number)
}

func TestCatalogFileRepositoryPagination(t *testing.T) {
	repo := newFileRepo(t)

	records, total, err := repo.List(context.Background(), models.CatalogFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 1)
	assert.Equal(t, "8.01", records[0].Number)

	records, total, err = repo.List(context.Background(), models.CatalogFilter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, records)
}

func TestCatalogFileRepositoryFindByNumber(t *testing.T) {
	repo := newFileRepo(t)

	record, err := repo.FindByNumber(context.Background(), "6.006")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Algorithms", record.Name)
	require.Len(t, record.LectureSections, 1)
	assert.Equal(t, [][2]int{{4, 2}, {64, 2}}, record.LectureSections[0].Slots)

	_, err = repo.FindByNumber(context.Background(), "24.900")
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestCatalogFileRepositoryRejectsBadSnapshot(t *testing.T) {
	_, err := NewCatalogFileRepositoryFromBytes([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
