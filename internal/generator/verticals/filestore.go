package verticals

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/GlebRadaev/martgen/internal/domain"
)

// ErrMalformed means the master file exists but cannot be trusted; callers
// must abort instead of regenerating, or vertical ids would silently change
// between runs.
var ErrMalformed = errors.New("malformed verticals master file")

var fileHeader = []string{"id", "name", "description", "status"}

// FileStore keeps the vertical set in a pipe-delimited file with a header
// row, the same layout the exporter writes for every other table.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]domain.Vertical, bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '|'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if len(rows) == 0 || len(rows[0]) != len(fileHeader) {
		return nil, false, fmt.Errorf("%w: bad header", ErrMalformed)
	}

	verticals := make([]domain.Vertical, 0, len(rows)-1)
	for _, row := range rows[1:] {
		v := domain.Vertical{
			ID:          row[0],
			Name:        row[1],
			Description: row[2],
			Status:      row[3],
		}
		if v.ID == "" || v.Name == "" || v.Status == "" {
			return nil, false, fmt.Errorf("%w: record missing required fields", ErrMalformed)
		}
		verticals = append(verticals, v)
	}
	return verticals, true, nil
}

func (s *FileStore) Save(verticals []domain.Vertical) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '|'
	if err := w.Write(fileHeader); err != nil {
		return err
	}
	for _, v := range verticals {
		if err := w.Write([]string{v.ID, v.Name, v.Description, v.Status}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
