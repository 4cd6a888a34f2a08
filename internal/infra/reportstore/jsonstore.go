package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

const defaultReportsDir = "reports"

// IndexFile is the JSONL index kept next to the reports when enabled.
const IndexFile = "index.jsonl"

type JSONStore struct {
	rootDir    string
	reportsDir string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ReportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:    root,
		reportsDir: dir,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// SaveReport writes the report as reports/<ts>_<fg>-on-<bg>.json and returns
// its id. A report without an id gets a fresh uuid.
func (s *JSONStore) SaveReport(rep domain.Report) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := rep
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = s.now()
	}
	toSave.CreatedAt = toSave.CreatedAt.UTC()
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}

	slug := slugify(strings.TrimPrefix(rep.Foreground.Hex, "#") + "-on-" + strings.TrimPrefix(rep.Background.Hex, "#"))
	if slug == "" || slug == "on" {
		slug = "report"
	}

	filename := uniqueName(dir, toSave.CreatedAt.Format("20060102T150405Z")+"_"+slug)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// tmp then rename so readers never see a partial file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

// IndexEntry is one line of the JSONL index.
type IndexEntry struct {
	ID         string       `json:"id"`
	File       string       `json:"file"`
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Ratio      float64      `json:"ratio"`
	Level      domain.Level `json:"level"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (s *JSONStore) appendIndex(dir, filename string, rep domain.Report) error {
	line, err := json.Marshal(IndexEntry{
		ID:         rep.ID,
		File:       filename,
		Foreground: rep.Foreground.Hex,
		Background: rep.Background.Hex,
		Ratio:      rep.Result.Ratio,
		Level:      rep.Level,
		CreatedAt:  rep.CreatedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, IndexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// uniqueName picks base.json, or base-2.json and so on when two reports for
// the same pair land in the same second.
func uniqueName(dir, base string) string {
	name := base + ".json"
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s-%d.json", base, n)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
