package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/tempo/internal/repository"
)

// exportTimeLayout renders entry timestamps in the CSV as unambiguous local
// wall-clock time, matching the storage precision.
const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeader = []string{"Project", "Start", "End", "Duration (sec)", "Note"}

type exportService struct {
	entries  repository.EntryRepo
	observer UseCaseObserver
}

func NewExportService(entries repository.EntryRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, w io.Writer) error {
	rows, err := s.entries.List(ctx)
	if err != nil {
		return err
	}
	_, err = writeCSV(w, rows)
	return err
}

func (s *exportService) ExportFile(ctx context.Context, path string) (n int, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "export_csv", startedAt, err, map[string]any{"path": path, "rows": n})
	}()

	rows, err := s.entries.List(ctx)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}

	n, werr := writeCSV(f, rows)
	cerr := f.Close()
	if werr != nil {
		return 0, werr
	}
	if cerr != nil {
		return 0, fmt.Errorf("closing export file: %w", cerr)
	}
	return n, nil
}

func writeCSV(w io.Writer, rows []repository.EntryWithProject) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("writing export header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ProjectName,
			r.Entry.StartedAt.Format(exportTimeLayout),
			r.Entry.EndedAt.Format(exportTimeLayout),
			strconv.FormatInt(r.Entry.DurationSec, 10),
			r.Entry.Note,
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}
	return len(rows), nil
}
