package filesvc

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	extHTTP = ".http"
	extREST = ".rest"
)

type FileEntry struct {
	Name string
	Path string
}

func IsRequestFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extHTTP || ext == extREST
}

// ListRequestFiles discovers request files under root, sorted by name.
// Hidden directories are skipped when walking recursively.
func ListRequestFiles(root string, recursive bool) ([]FileEntry, error) {
	var entries []FileEntry

	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if !IsRequestFile(d.Name()) {
				return nil
			}
			name := d.Name()
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				name = rel
			}
			entries = append(entries, FileEntry{Name: name, Path: path})
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range dirEntries {
			if entry.IsDir() || !IsRequestFile(entry.Name()) {
				continue
			}
			entries = append(entries, FileEntry{
				Name: entry.Name(),
				Path: filepath.Join(root, entry.Name()),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
