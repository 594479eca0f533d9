package curl

import (
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/errdef"
	"github.com/unkn0wn-root/restcurl/internal/filesvc"
)

// Output manages the side-channel files the downstream viewer reads. These
// writes are deliberately separate from command assembly so the pure path
// stays testable without a filesystem.
type Output struct {
	fs  filesvc.Service
	dir string
}

func NewOutput(fs filesvc.Service, dir string) *Output {
	return &Output{fs: fs, dir: dir}
}

func (o *Output) HeadersPath() string {
	return filepath.Join(o.dir, headersFileName)
}

func (o *Output) BodyPath() string {
	return filepath.Join(o.dir, bodyFileName)
}

// Prepare deletes and recreates the capture files and writes the filetype
// marker, so a run that dies mid-transfer never leaves stale output behind.
func (o *Output) Prepare(filetype string) error {
	for _, path := range []string{o.HeadersPath(), o.BodyPath()} {
		if err := o.fs.DeleteFile(path); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "reset capture file %s", path)
		}
		if err := o.fs.WriteFile(path, nil); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "create capture file %s", path)
		}
	}

	markerPath := filepath.Join(o.dir, filetypeFileName)
	if err := o.fs.DeleteFile(markerPath); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "reset filetype marker")
	}
	if err := o.fs.WriteFile(markerPath, []byte(filetype+"\n")); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write filetype marker")
	}
	return nil
}

// WriteDebug records the assembled command line for troubleshooting.
func (o *Output) WriteDebug(args []string) error {
	path := filepath.Join(o.dir, debugFileName)
	line := strings.Join(args, " ") + "\n"
	if err := o.fs.WriteFile(path, []byte(line)); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write debug command file")
	}
	return nil
}
