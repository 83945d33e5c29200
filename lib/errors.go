package lib

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryOpen = errors.New("cannot open mail directory")
	ErrEntryList     = errors.New("cannot list mail directory")
	ErrMetadata      = errors.New("cannot read file metadata")
	ErrFileOpen      = errors.New("cannot open mail file")
	ErrLineRead      = errors.New("cannot read mail file")
	ErrHeaderParse   = errors.New("cannot parse header")
)

// ScanError is returned by any stage of a scan. It matches its Kind with errors.Is
// and unwraps to the underlying cause.
type ScanError struct {
	Kind error
	Path string
	Err  error
}

func NewScanError(kind error, path string, err error) *ScanError {
	return &ScanError{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

func (e *ScanError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Path, e.Err)
}

func (e *ScanError) Is(target error) bool {
	return target == e.Kind
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
