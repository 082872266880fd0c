package fetcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidFilename = errors.New("invalid filename")

type FilenameError struct {
	Name        string
	explanation string
}

func (fe *FilenameError) Error() string {
	return fmt.Sprintf("%s: %s (name=%q)", ErrInvalidFilename, fe.explanation, fe.Name)
}

func (fe *FilenameError) Unwrap() error {
	return ErrInvalidFilename
}

// ValidateFilename makes sure that the name joined with the destination directory
// stays inside of it.
func ValidateFilename(name string) error {
	switch {
	case name == "":
		return &FilenameError{Name: name, explanation: "filename can not be empty"}
	case name == "." || name == "..":
		return &FilenameError{Name: name, explanation: "filename can not refer to a directory"}
	case filepath.IsAbs(name):
		return &FilenameError{Name: name, explanation: "filename can not be an absolute path"}
	case strings.ContainsAny(name, `/\`):
		return &FilenameError{Name: name, explanation: "filename can not contain path separators"}
	case strings.ContainsRune(name, 0):
		return &FilenameError{Name: name, explanation: "filename can not contain NUL"}
	}

	return nil
}

// FileExists returns whether anything exists at the path.
func FileExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}

	return true
}

// EnsureDirectory creates the directory and all of its parents if necessary.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("%w: couldn't create directory(name=%s)", err, dir)
	}

	return nil
}
