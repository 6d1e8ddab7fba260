package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/speakwise/analyzer/orchestrator"
)

// FileStore keeps one indented JSON file per report under <root>/<user>/.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		return nil, errors.New("file store: empty directory")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	return &FileStore{root: root}, nil
}

func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (s *FileStore) userDir(userID string) (string, error) {
	if userID == "" || userID != filepath.Base(userID) || strings.HasPrefix(userID, ".") {
		return "", fmt.Errorf("file store: invalid user %q", userID)
	}
	return filepath.Join(s.root, userID), nil
}

func (s *FileStore) Save(ctx context.Context, r orchestrator.Report) (string, error) {
	dir, err := s.userDir(r.UserID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	r.ID = newID()
	if err := writeJSON(filepath.Join(dir, r.ID+".json"), r); err != nil {
		return "", fmt.Errorf("file store: write %s: %w", r.ID, err)
	}
	return r.ID, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (orchestrator.Report, error) {
	if !validID(id) {
		return orchestrator.Report{}, ErrNotFound
	}
	matches, err := filepath.Glob(filepath.Join(s.root, "*", id+".json"))
	if err != nil {
		return orchestrator.Report{}, err
	}
	if len(matches) == 0 {
		return orchestrator.Report{}, ErrNotFound
	}
	var r orchestrator.Report
	if err := readJSON(matches[0], &r); err != nil {
		return orchestrator.Report{}, fmt.Errorf("file store: read %s: %w", id, err)
	}
	return r, nil
}

func (s *FileStore) ListByUser(ctx context.Context, userID string, limit int) ([]orchestrator.Report, error) {
	dir, err := s.userDir(userID)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []orchestrator.Report{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]orchestrator.Report, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		var r orchestrator.Report
		if err := readJSON(filepath.Join(dir, e.Name()), &r); err != nil {
			return nil, fmt.Errorf("file store: read %s: %w", e.Name(), err)
		}
		out = append(out, r)
	}
	newestFirst(out)
	return truncate(out, limit), nil
}

func (s *FileStore) Ping(ctx context.Context) error {
	fi, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("file store: %s is not a directory", s.root)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
