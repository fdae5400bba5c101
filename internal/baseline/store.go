package baseline

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"agentlint/internal/validator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrBaselineNotFound is returned when a baseline doesn't exist.
var ErrBaselineNotFound = errors.New("baseline not found")

// ErrInvalidName is returned when a baseline name leaves nothing usable as a
// file name once separators and control characters are stripped.
var ErrInvalidName = errors.New("invalid baseline name")

// Store keeps one JSON file per baseline name under Dir.
type Store struct {
	Dir string
}

// NewStore creates a store with the given directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Record saves the findings of one check run as the baseline name. The
// returned flag reports whether an earlier baseline of that name was replaced.
func (s *Store) Record(name, source, fingerprint string, result validator.Result, now time.Time) (Baseline, bool, error) {
	file, err := s.file(name)
	if err != nil {
		return Baseline{}, false, err
	}
	_, statErr := os.Stat(file)

	b := FromResult(name, source, fingerprint, result, now)
	if err := s.write(file, b); err != nil {
		return Baseline{}, false, err
	}
	return b, statErr == nil, nil
}

// Save stores a baseline under its name, replacing any previous one.
func (s *Store) Save(b Baseline) error {
	file, err := s.file(b.Name)
	if err != nil {
		return err
	}
	return s.write(file, b)
}

// Load retrieves a baseline by name.
func (s *Store) Load(name string) (Baseline, error) {
	file, err := s.file(name)
	if err != nil {
		return Baseline{}, err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Baseline{}, ErrBaselineNotFound
		}
		return Baseline{}, err
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return Baseline{}, errors.Wrapf(err, "corrupt baseline %s", name)
	}
	return b, nil
}

// List returns all stored baselines as summaries, ordered by file name.
// Unreadable or corrupt files are skipped.
func (s *Store) List() ([]BaselineSummary, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BaselineSummary{}, nil
		}
		return nil, err
	}

	summaries := []BaselineSummary{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			continue
		}
		var b Baseline
		if json.Unmarshal(data, &b) != nil {
			continue
		}
		summaries = append(summaries, b.Summary())
	}
	return summaries, nil
}

// Delete removes a baseline by name.
func (s *Store) Delete(name string) error {
	file, err := s.file(name)
	if err != nil {
		return err
	}
	if err := os.Remove(file); err != nil {
		if os.IsNotExist(err) {
			return ErrBaselineNotFound
		}
		return err
	}
	return nil
}

// write replaces file through a temporary sibling so a reader never sees a
// half-written baseline.
func (s *Store) write(file string, b Baseline) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "cannot create baseline directory %s", s.Dir)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode baseline")
	}

	tmp, err := os.CreateTemp(s.Dir, ".baseline-*")
	if err != nil {
		return errors.Wrap(err, "cannot write baseline")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "cannot write baseline")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "cannot write baseline")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "cannot write baseline")
	}
	return errors.Wrap(os.Rename(tmp.Name(), file), "cannot write baseline")
}

// file maps a baseline name onto its JSON file. Path separators become
// underscores and control characters are dropped.
func (s *Store) file(name string) (string, error) {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if strings.Trim(safe, ".") == "" {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return filepath.Join(s.Dir, safe+".json"), nil
}
