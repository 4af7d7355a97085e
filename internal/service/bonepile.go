package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"bonepiledash/internal/excel"
	"bonepiledash/internal/model"
	"bonepiledash/internal/stats"
	"bonepiledash/internal/storage"
	"bonepiledash/internal/store"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidFormat   = errors.New("invalid workbook")
	ErrNoData          = errors.New("no data loaded")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNoArchive       = errors.New("no archived workbook available")
)

// Drill-down category keys for SNList.
const (
	CategoryTotal = "total"
	CategoryFail  = "fail"
	CategoryPass  = "pass"
)

const archiveURLExpiry = 15 * time.Minute

// UploadResult reports what a successful upload produced.
type UploadResult struct {
	Filename   string    `json:"filename"`
	Sheet      string    `json:"sheet"`
	Rows       int       `json:"rows"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// BonepileService defines the dashboard use cases. All reads serve the
// current snapshot and fail with ErrNoData before the first upload.
type BonepileService interface {
	// Upload parses the workbook, recomputes the summary and atomically
	// replaces the current snapshot. A failed parse leaves the previous
	// snapshot untouched.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*UploadResult, error)

	// Summary returns the current summary snapshot.
	Summary(ctx context.Context) (*model.Summary, error)

	// SNList returns the unique serial numbers for a category
	// (total, fail or pass) in first-occurrence order.
	SNList(ctx context.Context, category string) ([]string, error)

	// FailEmptyAction returns fail rows with an empty IGS Action, in row order.
	FailEmptyAction(ctx context.Context) ([]model.Record, error)

	// InProcess returns in-process rows (waiting-for-material excluded).
	InProcess(ctx context.Context) ([]model.Record, error)

	// WaitingMaterial returns waiting-for-material rows.
	WaitingMaterial(ctx context.Context) ([]model.Record, error)

	// ArchiveURL returns a time-limited download URL for the archived copy
	// of the current workbook, when the archive is configured.
	ArchiveURL(ctx context.Context) (string, error)
}

type bonepileService struct {
	snapshots *store.SummaryStore
	archive   storage.Storage // nil when archiving is disabled
}

// NewBonepileService constructs the service. archive may be nil.
func NewBonepileService(snapshots *store.SummaryStore, archive storage.Storage) BonepileService {
	return &bonepileService{snapshots: snapshots, archive: archive}
}

func (s *bonepileService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*UploadResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !excel.AllowedFile(originalFilename) {
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidFormat, filepath.Ext(originalFilename))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	sheet, err := excel.Parse(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, excel.ErrInvalidFormat) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, err
	}

	summary := stats.Aggregate(sheet.Records)
	summary.Filename = originalFilename
	summary.Sheet = sheet.Name
	summary.RowCount = len(sheet.Records)
	summary.UploadedAt = time.Now().UTC()

	// Archive the raw workbook best-effort; the snapshot is published either
	// way. Only the current file is kept relevant, so the key embeds the
	// upload time and the previous object simply goes stale.
	if s.archive != nil {
		key := path.Join("bonepile", summary.UploadedAt.Format("20060102T150405Z")+filepath.Ext(originalFilename))
		_, archiveErr := s.archive.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: contentType,
			Metadata:    map[string]string{"original-filename": originalFilename},
		})
		if archiveErr != nil {
			log.Warn().Err(archiveErr).Str("key", key).Msg("workbook archive failed")
		} else {
			summary.ArchiveKey = key
		}
	}

	s.snapshots.Swap(summary)

	return &UploadResult{
		Filename:   originalFilename,
		Sheet:      sheet.Name,
		Rows:       summary.RowCount,
		UploadedAt: summary.UploadedAt,
	}, nil
}

func (s *bonepileService) current() (*model.Summary, error) {
	sum, ok := s.snapshots.Current()
	if !ok {
		return nil, ErrNoData
	}
	return sum, nil
}

func (s *bonepileService) Summary(ctx context.Context) (*model.Summary, error) {
	return s.current()
}

func (s *bonepileService) SNList(ctx context.Context, category string) ([]string, error) {
	sum, err := s.current()
	if err != nil {
		return nil, err
	}
	switch category {
	case CategoryTotal:
		return sum.TotalSNs, nil
	case CategoryFail:
		return sum.FailSNs, nil
	case CategoryPass:
		return sum.PassSNs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
}

func (s *bonepileService) FailEmptyAction(ctx context.Context) ([]model.Record, error) {
	sum, err := s.current()
	if err != nil {
		return nil, err
	}
	return sum.FailEmptyAction, nil
}

func (s *bonepileService) InProcess(ctx context.Context) ([]model.Record, error) {
	sum, err := s.current()
	if err != nil {
		return nil, err
	}
	return sum.InProcess, nil
}

func (s *bonepileService) WaitingMaterial(ctx context.Context) ([]model.Record, error) {
	sum, err := s.current()
	if err != nil {
		return nil, err
	}
	return sum.WaitingMaterial, nil
}

func (s *bonepileService) ArchiveURL(ctx context.Context) (string, error) {
	if s.archive == nil {
		return "", ErrNoArchive
	}
	sum, err := s.current()
	if err != nil {
		return "", err
	}
	if sum.ArchiveKey == "" {
		return "", ErrNoArchive
	}
	return s.archive.PresignGet(ctx, sum.ArchiveKey, archiveURLExpiry)
}
