package report

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"jobdetails/src/provider"
)

// CSVHeader is the first row of every report file.
var CSVHeader = []string{"Field", "Value"}

// FileName returns <jobName>_<buildID>.csv. Folder separators in the job name
// become underscores so the file always lands in the output directory.
func FileName(jobName, buildID string) string {
	return strings.ReplaceAll(jobName, "/", "_") + "_" + buildID + ".csv"
}

// FileName returns the CSV file name for this report.
func (r *Report) FileName() string {
	return FileName(r.JobName, r.BuildID)
}

// WriteCSV writes the report into dir on fs and returns the path written.
// Rows end in CRLF.
func (r *Report) WriteCSV(fs afero.Fs, dir string) (string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %w", provider.ErrOutput, dir, err)
	}

	path := filepath.Join(dir, r.FileName())
	f, err := fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %w", provider.ErrOutput, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %w", provider.ErrOutput, path, err)
	}
	for _, field := range r.Fields {
		if err := w.Write([]string{field.Label, field.Value}); err != nil {
			return "", fmt.Errorf("%w: failed to write %s: %w", provider.ErrOutput, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %w", provider.ErrOutput, path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close %s: %w", provider.ErrOutput, path, err)
	}

	return path, nil
}
