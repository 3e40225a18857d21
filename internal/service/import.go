package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"examdrill/internal/domain"
	"examdrill/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImportService loads question-bank files and maintains the exam
// metadata derived from them.
type ImportService interface {
	// ImportDirectory replaces the question and metadata collections with
	// the contents of every *.json file in dir, then synthesizes one
	// flagged and one missed pseudo-exam per title.
	ImportDirectory(ctx context.Context, dir string) (*ImportSummary, error)

	// Reset drops all questions, metadata and attempts.
	Reset(ctx context.Context) error
}

// ImportSummary reports what an import run did.
type ImportSummary struct {
	FilesProcessed    int
	TitlesDiscovered  int
	QuestionsImported int
}

// FileMetadata holds the fields parsed from a question-bank file name.
type FileMetadata struct {
	Title    string
	Type     string
	Vendor   string
	Year     int
	FullName string
}

// questionBankFile is the on-disk format of one question-bank file.
type questionBankFile struct {
	Questions []questionBankEntry `json:"questions"`
}

type questionBankEntry struct {
	Question        string `json:"question"`
	Choices         []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		IsCorrect bool   `json:"isCorrect"`
	} `json:"choices"`
	CorrectAnswerID string `json:"correctAnswerId"`
	Explanation     string `json:"explanation"`
}

// importService implements ImportService
type importService struct {
	questionRepo domain.QuestionRepository
	examRepo     domain.ExamMetadataRepository
	attemptRepo  domain.AttemptRepository
	taxonomy     TaxonomyService
}

// NewImportService creates a new instance of importService
func NewImportService(
	questionRepo domain.QuestionRepository,
	examRepo domain.ExamMetadataRepository,
	attemptRepo domain.AttemptRepository,
	taxonomy TaxonomyService,
) ImportService {
	return &importService{
		questionRepo: questionRepo,
		examRepo:     examRepo,
		attemptRepo:  attemptRepo,
		taxonomy:     taxonomy,
	}
}

// ParseFileName extracts exam metadata from a file name of the form
// Title_Type_Vendor_Year.json. Files that do not follow the convention
// fall back to defaults rather than failing the import.
func ParseFileName(fileName string) FileMetadata {
	baseName := strings.TrimSuffix(fileName, ".json")
	parts := strings.Split(baseName, "_")

	meta := FileMetadata{
		Title:    "Unknown Title",
		Type:     "Exam",
		Vendor:   "Unknown",
		Year:     time.Now().Year(),
		FullName: baseName,
	}
	if len(parts) > 0 && parts[0] != "" {
		meta.Title = parts[0]
	}
	if len(parts) > 1 {
		meta.Type = parts[1]
	}
	if len(parts) > 2 {
		meta.Vendor = parts[2]
	}
	if len(parts) > 3 {
		if year, err := strconv.Atoi(parts[3]); err == nil {
			meta.Year = year
		}
	}
	if len(parts) < 4 {
		logger.Get().Warn("File does not follow the Title_Type_Vendor_Year.json convention",
			zap.String("fileName", fileName))
	}
	return meta
}

// ExamIDFor derives the exam id for one imported file. "All questions"
// exams embed the vendor so the same vendor bank is never merged with
// another; regular exams number by position in the import run.
func ExamIDFor(meta FileMetadata, position int) string {
	if strings.Contains(strings.ToLower(meta.Type), "all") {
		return fmt.Sprintf("%s_%s_%s", meta.Title, meta.Type, meta.Vendor)
	}
	return fmt.Sprintf("%s_%d", meta.Title, position)
}

type parsedBankFile struct {
	fileName string
	meta     FileMetadata
	bank     questionBankFile
}

// ImportDirectory implements ImportService
func (s *importService) ImportDirectory(ctx context.Context, dir string) (*ImportSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	var fileNames []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			fileNames = append(fileNames, entry.Name())
		}
	}
	sort.Strings(fileNames)

	if len(fileNames) == 0 {
		logger.Get().Warn("No question bank files found", zap.String("dir", dir))
		return &ImportSummary{}, nil
	}

	// Parse all files concurrently before touching the database, so a
	// malformed file aborts the run with nothing cleared.
	parsed := make([]parsedBankFile, len(fileNames))
	g, gctx := errgroup.WithContext(ctx)
	for i, fileName := range fileNames {
		i, fileName := i, fileName
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(dir, fileName))
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", fileName, err)
			}
			var bank questionBankFile
			if err := json.Unmarshal(data, &bank); err != nil {
				return fmt.Errorf("invalid question bank file %s: %w", fileName, err)
			}
			parsed[i] = parsedBankFile{
				fileName: fileName,
				meta:     ParseFileName(fileName),
				bank:     bank,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Replace the collections wholesale: re-import never duplicates.
	if err := s.questionRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear questions: %w", err)
	}
	if err := s.examRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear exam metadata: %w", err)
	}

	summary := &ImportSummary{FilesProcessed: len(parsed)}
	titleOrder := make([]string, 0)
	firstMetaByTitle := make(map[string]FileMetadata)

	for i, file := range parsed {
		if _, seen := firstMetaByTitle[file.meta.Title]; !seen {
			titleOrder = append(titleOrder, file.meta.Title)
			firstMetaByTitle[file.meta.Title] = file.meta
		}

		examID := ExamIDFor(file.meta, i+1)
		imported := 0
		for _, entry := range file.bank.Questions {
			q := toDomainImportQuestion(entry, examID, file.meta)
			if err := q.Validate(); err != nil {
				logger.Get().Warn("Skipping invalid question",
					zap.String("fileName", file.fileName),
					zap.Error(err))
				continue
			}
			if err := s.questionRepo.Save(ctx, q); err != nil {
				return nil, fmt.Errorf("failed to save question from %s: %w", file.fileName, err)
			}
			imported++
		}

		if err := s.examRepo.Save(ctx, &domain.ExamMetadata{
			ExamID:        examID,
			FileName:      file.fileName,
			Title:         file.meta.Title,
			Type:          file.meta.Type,
			Vendor:        file.meta.Vendor,
			Year:          file.meta.Year,
			FullName:      file.meta.FullName,
			QuestionCount: imported,
			DisplayOrder:  i,
		}); err != nil {
			return nil, fmt.Errorf("failed to save exam metadata for %s: %w", examID, err)
		}

		summary.QuestionsImported += imported
		logger.Get().Info("Imported question bank",
			zap.String("fileName", file.fileName),
			zap.String("examId", examID),
			zap.Int("questions", imported))
	}

	// Exactly one flagged and one missed pseudo-exam per title.
	for _, title := range titleOrder {
		base := firstMetaByTitle[title]
		if err := s.examRepo.Save(ctx, &domain.ExamMetadata{
			ExamID:    title + "_Flagged",
			FileName:  "virtual",
			Title:     title,
			Type:      "Flagged Questions",
			Vendor:    base.Vendor,
			Year:      base.Year,
			FullName:  title + " Flagged Questions",
			IsFlagged: true,
		}); err != nil {
			return nil, fmt.Errorf("failed to create flagged exam for %s: %w", title, err)
		}
		if err := s.examRepo.Save(ctx, &domain.ExamMetadata{
			ExamID:   title + "_Missed",
			FileName: "virtual",
			Title:    title,
			Type:     "Missed Questions",
			Vendor:   base.Vendor,
			Year:     base.Year,
			FullName: title + " Missed Questions",
			IsMissed: true,
		}); err != nil {
			return nil, fmt.Errorf("failed to create missed exam for %s: %w", title, err)
		}
	}
	summary.TitlesDiscovered = len(titleOrder)

	if s.taxonomy != nil {
		if err := s.taxonomy.InvalidateTitles(ctx); err != nil {
			logger.Get().Error("Failed to invalidate titles cache after import", zap.Error(err))
		}
	}

	logger.Get().Info("Import complete",
		zap.Int("files", summary.FilesProcessed),
		zap.Int("titles", summary.TitlesDiscovered),
		zap.Int("questions", summary.QuestionsImported))
	return summary, nil
}

// Reset implements ImportService
func (s *importService) Reset(ctx context.Context) error {
	if err := s.questionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	if err := s.examRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete exam metadata: %w", err)
	}
	if err := s.attemptRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}
	if s.taxonomy != nil {
		if err := s.taxonomy.InvalidateTitles(ctx); err != nil {
			logger.Get().Error("Failed to invalidate titles cache after reset", zap.Error(err))
		}
	}
	logger.Get().Info("Database reset complete")
	return nil
}

func toDomainImportQuestion(entry questionBankEntry, examID string, meta FileMetadata) *domain.Question {
	choices := make([]domain.Choice, 0, len(entry.Choices))
	for _, c := range entry.Choices {
		choices = append(choices, domain.Choice{
			ID:        c.ID,
			Text:      c.Text,
			IsCorrect: c.IsCorrect,
		})
	}
	return &domain.Question{
		Text:            entry.Question,
		Choices:         choices,
		CorrectAnswerID: entry.CorrectAnswerID,
		Explanation:     entry.Explanation,
		ExamID:          examID,
		Title:           meta.Title,
		Type:            meta.Type,
		Vendor:          meta.Vendor,
		Year:            meta.Year,
	}
}
