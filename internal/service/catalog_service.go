package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/memovasquez/hydrant/internal/dto"
	"github.com/memovasquez/hydrant/internal/models"
	"github.com/memovasquez/hydrant/internal/repository"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
)

// CatalogSource abstracts where pre-validated catalog records come from: a
// JSON snapshot on disk or a Postgres table of JSONB payloads.
type CatalogSource interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]*models.RawClass, int, error)
	FindByNumber(ctx context.Context, number string) (*models.RawClass, error)
}

// CatalogService projects raw catalog records into API views. The records
// themselves are immutable; every view is recomputed per request.
type CatalogService struct {
	source  CatalogSource
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCatalogService instantiates CatalogService. metrics may be nil when
// instrumentation is disabled.
func NewCatalogService(source CatalogSource, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{source: source, metrics: metrics, logger: logger}
}

// List returns class summaries with pagination metadata.
func (s *CatalogService) List(ctx context.Context, filter models.CatalogFilter) ([]dto.ClassSummary, *models.Pagination, error) {
	start := time.Now()
	records, total, err := s.source.List(ctx, filter)
	s.metrics.ObserveCatalogQuery("list", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list catalog")
	}

	summaries := make([]dto.ClassSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, summarize(models.NewClass(record)))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return summaries, pagination, nil
}

// Get returns the full detail view for one class.
func (s *CatalogService) Get(ctx context.Context, number string) (*dto.ClassDetail, error) {
	record, err := s.Raw(ctx, number)
	if err != nil {
		return nil, err
	}

	class := models.NewClass(record)
	detail := &dto.ClassDetail{
		ClassSummary: summarize(class),
		Description:  class.Description(),
		Prereqs:      record.Prereqs,
		SameAs:       record.SameAs,
		MeetsWith:    record.MeetsWith,
		RawTimes:     rawTimes(record),
	}
	for _, group := range class.Groups() {
		detail.Groups = append(detail.Groups, dto.NewSectionGroupView(group))
	}
	return detail, nil
}

// Raw fetches the untouched record; the planner materializes its own Class
// from it so selection state stays per session.
func (s *CatalogService) Raw(ctx context.Context, number string) (*models.RawClass, error) {
	start := time.Now()
	record, err := s.source.FindByNumber(ctx, number)
	s.metrics.ObserveCatalogQuery("find_by_number", time.Since(start))
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return record, nil
}

func summarize(class *models.Class) dto.ClassSummary {
	raw := class.Raw()
	kinds := make([]string, 0, len(class.Groups()))
	for _, group := range class.Groups() {
		kinds = append(kinds, group.Kind().String())
	}
	return dto.ClassSummary{
		Number:     class.Number(),
		Course:     class.Course(),
		Name:       class.Name(),
		TotalUnits: class.TotalUnits(),
		Hours:      class.Hours(),
		Level:      raw.Level,
		Terms:      raw.Terms,
		Flags:      class.Flags(),
		Evals:      class.Evals(),
		Kinds:      kinds,
	}
}

func rawTimes(record *models.RawClass) map[string][]string {
	times := map[string][]string{}
	if len(record.LectureRawTimes) > 0 {
		times[models.KindLecture.String()] = record.LectureRawTimes
	}
	if len(record.RecitationRawTimes) > 0 {
		times[models.KindRecitation.String()] = record.RecitationRawTimes
	}
	if len(record.LabRawTimes) > 0 {
		times[models.KindLab.String()] = record.LabRawTimes
	}
	if len(times) == 0 {
		return nil
	}
	return times
}
