package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucaferrario/tournament-manager/export"
	"github.com/lucaferrario/tournament-manager/storage"
	"github.com/lucaferrario/tournament-manager/tournament"
)

type ExportService interface {
	// BuildWorkbook renders the current engine state as an xlsx workbook.
	BuildWorkbook(ctx context.Context) ([]byte, error)
	// PublishWorkbook uploads the workbook to object storage and returns its
	// public URL. Requires an uploader to be configured.
	PublishWorkbook(ctx context.Context) (string, error)
}

type exportService struct {
	engine   *tournament.Tournament
	uploader storage.FileUploader // nil when publishing is not configured
	logger   *slog.Logger
}

func NewExportService(engine *tournament.Tournament, uploader storage.FileUploader, logger *slog.Logger) ExportService {
	return &exportService{engine: engine, uploader: uploader, logger: logger}
}

func (s *exportService) BuildWorkbook(ctx context.Context) ([]byte, error) {
	var snap export.Snapshot

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Teams = s.engine.Teams()
		return nil
	})
	g.Go(func() error {
		for _, group := range s.engine.Groups() {
			snap.Groups = append(snap.Groups, export.GroupSheet{
				Group:     group,
				Matches:   s.engine.GroupMatches(group.Label),
				Standings: s.engine.CalculateGroupStandings(group.Label),
			})
		}
		return nil
	})
	g.Go(func() error {
		snap.Playoffs = s.engine.Playoffs()
		return nil
	})
	g.Go(func() error {
		snap.FinalStandings = s.engine.FinalStandings()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return export.Workbook(snap)
}

func (s *exportService) PublishWorkbook(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", ErrPublishingDisabled
	}

	data, err := s.BuildWorkbook(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/tournament-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	result, err := s.uploader.Upload(ctx, key, export.ContentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to publish workbook: %w", err)
	}

	s.logger.Info("workbook published",
		slog.String("key", result.Key),
		slog.String("url", result.Location))
	return result.Location, nil
}
