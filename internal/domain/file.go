package domain

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFilePartLength bounds filenames and directory names.
const MaxFilePartLength = 250

// File is an uploaded asset, such as a course preview image.
type File struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Directory string    `json:"directory"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFile creates a File with a fresh ID after validating its name parts.
func NewFile(filename, directory string) (*File, error) {
	f := &File{
		ID:        uuid.New(),
		Filename:  filename,
		Directory: directory,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that the filename and directory are non-empty and cannot
// escape the storage root.
func (f *File) Validate() error {
	ve := &ValidationError{}

	CheckString(ve, f.Filename, 1, MaxFilePartLength, "body", "filename")
	if f.Filename != "" && (strings.ContainsAny(f.Filename, `/\`) || f.Filename == "." || f.Filename == "..") {
		ve.Add(ValueError(f.Filename, "filename must not contain path separators", "body", "filename"))
	}

	CheckString(ve, f.Directory, 1, MaxFilePartLength, "body", "directory")
	if f.Directory != "" && !safeDirectory(f.Directory) {
		ve.Add(ValueError(f.Directory, "directory must be a relative path inside the storage root", "body", "directory"))
	}

	return ve.OrNil()
}

// Key is the storage path of the file relative to the storage root.
func (f *File) Key() string {
	return path.Join(f.Directory, f.Filename)
}

func safeDirectory(dir string) bool {
	if strings.HasPrefix(dir, "/") || strings.Contains(dir, `\`) {
		return false
	}
	for _, part := range strings.Split(dir, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
