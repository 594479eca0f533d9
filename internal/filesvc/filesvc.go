package filesvc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/restcurl/internal/errdef"
)

// Service is the filesystem surface the parser and command builder depend
// on. Keeping it narrow lets tests run against an in-memory implementation.
type Service interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	DeleteFile(path string) error
}

func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

type osService struct {
	baseDir string
}

// NewOS returns a Service backed by the real filesystem. Relative paths are
// resolved against baseDir so includes inside a request file work no matter
// where the tool was launched from.
func NewOS(baseDir string) Service {
	return &osService{baseDir: baseDir}
}

func (s *osService) resolve(path string) string {
	if filepath.IsAbs(path) || s.baseDir == "" {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

func (s *osService) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read %s", path)
	}
	return data, nil
}

func (s *osService) WriteFile(path string, data []byte) error {
	full := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "ensure directory for %s", path)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write %s", path)
	}
	return nil
}

func (s *osService) DeleteFile(path string) error {
	err := os.Remove(s.resolve(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errdef.Wrap(errdef.CodeFilesystem, err, "delete %s", path)
	}
	return nil
}

// Mem is an in-memory Service for tests.
type Mem struct {
	files map[string][]byte
}

func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

func (m *Mem) Put(path string, contents string) {
	m.files[path] = []byte(contents)
}

func (m *Mem) Contents(path string) (string, bool) {
	data, ok := m.files[path]
	return string(data), ok
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errdef.Wrap(errdef.CodeFilesystem, fs.ErrNotExist, "read %s", path)
	}
	return append([]byte(nil), data...), nil
}

func (m *Mem) WriteFile(path string, data []byte) error {
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *Mem) DeleteFile(path string) error {
	delete(m.files, path)
	return nil
}
