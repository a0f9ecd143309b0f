package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const highScoreFile = "highscore.json"

// FileStore keeps the high score in a small JSON document under dir
type FileStore struct {
	path string
	key  string
}

func NewFileStore(dir, key string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data directory %s", dir)
	}
	return &FileStore{
		path: filepath.Join(dir, highScoreFile),
		key:  key,
	}, nil
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Load(ctx context.Context) (int, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "reading high score file")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "decoding %s: %v", fs.path, err)
	}
	raw, ok := doc[fs.key]
	if !ok {
		return 0, ErrNotFound
	}
	var score int
	if err := json.Unmarshal(raw, &score); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "key %s: %v", fs.key, err)
	}
	return validate(score)
}

// Save replaces the file atomically through a rename
func (fs *FileStore) Save(ctx context.Context, score int) error {
	if _, err := validate(score); err != nil {
		return err
	}
	data, err := json.MarshalIndent(map[string]int{fs.key: score}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding high score")
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), highScoreFile+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing high score")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.path), "replacing high score file")
}

func (fs *FileStore) Close() error {
	return nil
}
