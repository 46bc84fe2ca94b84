// Package export serializes a dataset to one pipe-delimited file per table,
// with the header row and field order downstream loaders expect. Files are
// independent, so they are written concurrently; generation is already
// finished by the time export runs.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/martgen/internal/domain"
)

const delimiter = '|'

type CSVExporter struct {
	dir string
}

func NewCSV(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// Export writes every table of the dataset under the exporter's directory.
func (e *CSVExporter) Export(ctx context.Context, ds *domain.Dataset) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		table := table
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows := table.rows(ds)
			if err := e.writeFile(table.file, table.header, rows); err != nil {
				return fmt.Errorf("export %s: %w", table.file, err)
			}
			zap.L().Info("exported table", zap.String("file", table.file), zap.Int("rows", len(rows)))
			return nil
		})
	}
	return g.Wait()
}

func (e *CSVExporter) writeFile(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
