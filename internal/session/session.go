package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/framepick/framepick/internal/validate"
)

// Record is one accepted trim selection. Zero mark durations mean the
// corresponding natural edge was kept.
type Record struct {
	ID        string        `json:"id"                   validate:"required,uuid_rfc4122"`
	Path      string        `json:"path"                 validate:"required"`
	Start     time.Duration `json:"start_ns"             validate:"gte=0"`
	End       time.Duration `json:"end_ns"               validate:"gtefield=Start"`
	MarkStart time.Duration `json:"mark_start_ns,omitempty"`
	MarkEnd   time.Duration `json:"mark_end_ns,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Data is the on-disk structure of the session file.
type Data struct {
	Records []Record `json:"records"`
}

// Store handles the loading and saving of the session file.
type Store struct {
	Path string `validate:"required,filepath"`
	Data Data
}

// NewStore opens or creates the session file at path (tilde-expanded).
func NewStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Store{Path: expandedPath}
	if err := s.Load(); err != nil {
		// A missing file is a fresh store, not an error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a record, assigning its id and timestamp, and persists.
func (s *Store) Add(r Record) (Record, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if err := validate.Struct(r); err != nil {
		return Record{}, err
	}
	s.Data.Records = append(s.Data.Records, r)
	if err := s.Save(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Load reads the session file from disk, dropping records that fail
// validation rather than refusing to start.
func (s *Store) Load() error {
	logrus.Debug("Loading session file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.Data); err != nil {
		return err
	}

	kept := s.Data.Records[:0]
	for _, r := range s.Data.Records {
		if err := validate.Struct(r); err != nil {
			logrus.Warnf("Dropping invalid session record %q: %v", r.ID, err)
			continue
		}
		kept = append(kept, r)
	}
	s.Data.Records = kept
	return nil
}

// Save writes the session data to the file.
func (s *Store) Save() error {
	logrus.Debug("Saving session file to: ", s.Path)
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
