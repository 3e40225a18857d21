package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"examdrill/internal/cache"
	"examdrill/internal/domain"
	"examdrill/internal/dto"
	"examdrill/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TaxonomyService aggregates exam metadata into the title tree the
// client renders as its exam picker.
type TaxonomyService interface {
	// GetTitles returns every title with its exams in display order.
	GetTitles(ctx context.Context) (*dto.TitlesResponse, error)

	// InvalidateTitles drops the cached tree after imports or resets.
	InvalidateTitles(ctx context.Context) error
}

// taxonomyService implements TaxonomyService
type taxonomyService struct {
	examRepo domain.ExamMetadataRepository
	cache    domain.Cache
	ttl      time.Duration
	sfGroup  singleflight.Group
}

// NewTaxonomyService creates a new instance of taxonomyService. cache
// may be nil, in which case every call rebuilds the tree.
func NewTaxonomyService(examRepo domain.ExamMetadataRepository, c domain.Cache, ttl time.Duration) TaxonomyService {
	return &taxonomyService{
		examRepo: examRepo,
		cache:    c,
		ttl:      ttl,
	}
}

// GetTitles implements TaxonomyService
func (s *taxonomyService) GetTitles(ctx context.Context) (*dto.TitlesResponse, error) {
	key := cache.TitlesKey()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var resp dto.TitlesResponse
			if errUnmarshal := json.Unmarshal([]byte(cached), &resp); errUnmarshal == nil {
				return &resp, nil
			}
			logger.Get().Warn("Failed to unmarshal cached titles, rebuilding", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Error("Cache get failed for titles", zap.Error(err), zap.String("key", key))
		}
	}

	// Concurrent cache misses collapse into one rebuild.
	result, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		resp, buildErr := s.buildTitles(ctx)
		if buildErr != nil {
			return nil, buildErr
		}
		if s.cache != nil {
			if data, errMarshal := json.Marshal(resp); errMarshal == nil {
				if errSet := s.cache.Set(ctx, key, string(data), s.ttl); errSet != nil {
					logger.Get().Error("Failed to cache titles", zap.Error(errSet), zap.String("key", key))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.TitlesResponse), nil
}

// InvalidateTitles implements TaxonomyService
func (s *taxonomyService) InvalidateTitles(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cache.TitlesKey())
}

func (s *taxonomyService) buildTitles(ctx context.Context) (*dto.TitlesResponse, error) {
	metadata, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load exam metadata", err)
	}

	groups := make(map[string][]domain.ExamMetadata)
	titles := make([]string, 0)
	for _, m := range metadata {
		if _, seen := groups[m.Title]; !seen {
			titles = append(titles, m.Title)
		}
		groups[m.Title] = append(groups[m.Title], m)
	}
	sort.Strings(titles)

	resp := &dto.TitlesResponse{Titles: make([]dto.TitleGroupResponse, 0, len(titles))}
	for _, title := range titles {
		exams := orderExams(groups[title])
		group := dto.TitleGroupResponse{
			Title: title,
			Exams: make([]dto.ExamMetadataResponse, 0, len(exams)),
			Count: len(exams),
		}
		for i := range exams {
			group.Exams = append(group.Exams, toExamMetadataResponse(&exams[i]))
		}
		resp.Titles = append(resp.Titles, group)
	}
	return resp, nil
}

// orderExams arranges one title's exams into their display partitions:
// regular exams, then per-vendor all-questions exams, then the flagged
// and missed pseudo-exams last.
func orderExams(exams []domain.ExamMetadata) []domain.ExamMetadata {
	var regular, allQuestions, flagged, missed []domain.ExamMetadata
	for _, m := range exams {
		switch m.Kind() {
		case domain.ExamKindFlagged:
			flagged = append(flagged, m)
		case domain.ExamKindMissed:
			missed = append(missed, m)
		case domain.ExamKindAllQuestions:
			allQuestions = append(allQuestions, m)
		default:
			regular = append(regular, m)
		}
	}

	sort.SliceStable(regular, func(i, j int) bool {
		if regular[i].Vendor != regular[j].Vendor {
			return regular[i].Vendor < regular[j].Vendor
		}
		if regular[i].Year != regular[j].Year {
			return regular[i].Year > regular[j].Year
		}
		return regular[i].Type < regular[j].Type
	})
	sort.SliceStable(allQuestions, func(i, j int) bool {
		return allQuestions[i].Vendor < allQuestions[j].Vendor
	})

	ordered := make([]domain.ExamMetadata, 0, len(exams))
	ordered = append(ordered, regular...)
	ordered = append(ordered, allQuestions...)
	ordered = append(ordered, flagged...)
	ordered = append(ordered, missed...)
	return ordered
}

func toExamMetadataResponse(m *domain.ExamMetadata) dto.ExamMetadataResponse {
	return dto.ExamMetadataResponse{
		ExamID:        m.ExamID,
		FileName:      m.FileName,
		Title:         m.Title,
		Type:          m.Type,
		Vendor:        m.Vendor,
		Year:          m.Year,
		FullName:      m.FullName,
		QuestionCount: m.QuestionCount,
		IsFlagged:     m.IsFlagged,
		IsMissed:      m.IsMissed,
	}
}
