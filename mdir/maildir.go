package mdir

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/creativeprojects/mailwatch/lib"
	"github.com/creativeprojects/mailwatch/mailbox"
)

// readDirBatch is the number of directory entries requested per system call
const readDirBatch = 64

// Maildir reads the senders of the mail files found directly under root.
// It never writes to, moves or deletes anything inside root.
type Maildir struct {
	root      string
	log       lib.Logger
	rateLimit float64
	burst     int
	open      func(name string) (*os.File, error)
}

func New(root string) *Maildir {
	return NewWithLogger(root, nil)
}

func NewWithLogger(root string, logger lib.Logger) *Maildir {
	return &Maildir{
		root: root,
		log:  lib.OrNoLog(logger),
		open: os.Open,
	}
}

func (m *Maildir) Root() string {
	return m.root
}

// SetRateLimit limits the speed (bytes/sec) of reading the mail files. Zero means no limit.
func (m *Maildir) SetRateLimit(bytesPerSec float64, burst int) {
	m.rateLimit = bytesPerSec
	m.burst = burst
}

// Scan returns the sender of each mail file. Files without a sender are not counted.
// The first error stops the scan: there's no partial result.
func (m *Maildir) Scan(ctx context.Context) (mailbox.ScanResult, error) {
	result := mailbox.ScanResult{}
	files, err := m.Files(ctx)
	if err != nil {
		return result, err
	}
	entries := make([]mailbox.Entry, 0, len(files))
	for _, filename := range files {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		sender, found, err := m.Sender(ctx, filename)
		if err != nil {
			return result, err
		}
		if !found {
			m.log.Printf("no sender found in %q", filename)
			continue
		}
		entries = append(entries, mailbox.Entry{
			Filename: filename,
			Sender:   sender,
		})
	}
	result.Entries = entries
	return result, nil
}

// Files returns the path of the regular files found in root, in directory order.
// Symbolic links are followed: a link to a regular file is returned, anything else is skipped.
func (m *Maildir) Files(ctx context.Context) ([]string, error) {
	dir, err := os.Open(m.root)
	if err != nil {
		return nil, lib.NewScanError(lib.ErrDirectoryOpen, m.root, err)
	}
	defer dir.Close()

	files := make([]string, 0)
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		entries, err := dir.ReadDir(readDirBatch)
		for _, entry := range entries {
			filename := filepath.Join(m.root, entry.Name())
			regular, err := isRegularFile(filename, entry)
			if err != nil {
				return nil, lib.NewScanError(lib.ErrMetadata, filename, err)
			}
			if !regular {
				m.log.Printf("skipping %q: not a regular file", filename)
				continue
			}
			files = append(files, filename)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, lib.NewScanError(lib.ErrEntryList, m.root, err)
		}
	}
	return files, nil
}

func isRegularFile(filename string, entry fs.DirEntry) (bool, error) {
	info, err := entry.Info()
	if err != nil {
		return false, err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.Mode().IsRegular(), nil
	}
	info, err = os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		// dangling link
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
