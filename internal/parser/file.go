package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultMaxFileSize bounds how much a parser reads from one file.
const DefaultMaxFileSize int64 = 64 << 20

// File references an input file on the local filesystem. It carries only the
// path; existence and permissions are resolved when a parser asks for them.
type File struct {
	Path string
}

// NewFile returns a File for path.
func NewFile(path string) File {
	return File{Path: path}
}

// Stat resolves the file's metadata. Missing files and directories are
// reported as *UnreadableError.
func (f File) Stat() (fs.FileInfo, error) {
	if f.Path == "" {
		return nil, &UnreadableError{Path: f.Path, Err: fmt.Errorf("path is required")}
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &UnreadableError{Path: f.Path, Err: fmt.Errorf("file does not exist: %w", err)}
		}
		return nil, &UnreadableError{Path: f.Path, Err: err}
	}
	if info.IsDir() {
		return nil, &UnreadableError{Path: f.Path, Err: fmt.Errorf("path is a directory, not a file")}
	}
	return info, nil
}

// ReadAll reads the whole file, refusing files larger than limit bytes.
// A limit of zero or less uses DefaultMaxFileSize.
func (f File) ReadAll(limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > limit {
		return nil, &UnreadableError{
			Path: f.Path,
			Err:  fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), limit),
		}
	}

	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, &UnreadableError{Path: f.Path, Err: err}
	}
	defer fh.Close()

	// The file may grow between Stat and Read.
	data, err := io.ReadAll(io.LimitReader(fh, limit+1))
	if err != nil {
		return nil, &UnreadableError{Path: f.Path, Err: fmt.Errorf("read file: %w", err)}
	}
	if int64(len(data)) > limit {
		return nil, &UnreadableError{
			Path: f.Path,
			Err:  fmt.Errorf("file too large: more than %d bytes", limit),
		}
	}
	return data, nil
}
