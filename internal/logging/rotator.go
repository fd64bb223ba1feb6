package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logFilePerm   = 0o600
	logDirPerm    = 0o750
	bytesPerMB    = 1024 * 1024
	backupSuffix  = "2006-01-02-15-04-05.000"
	compressedExt = ".gz"
)

// FileRotator is an io.Writer appending to <Dir>/<Name> and rotating the
// file once it would grow past MaxSize. Rotated files get a timestamp
// suffix and are optionally gzipped.
type FileRotator struct {
	mu          sync.Mutex
	dir         string
	name        string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewFileRotator opens (or creates) the log file.
func NewFileRotator(cfg FileConfig) (*FileRotator, error) {
	name := cfg.Name
	if name == "" {
		name = "pinboard.log"
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &FileRotator{
		dir:        cfg.Dir,
		name:       name,
		maxSize:    int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:     time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *FileRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *FileRotator) open() error {
	path := r.Path()
	r.currentSize = 0
	if info, err := os.Stat(path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

// Write implements io.Writer.
func (r *FileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *FileRotator) rotate() error {
	var errs []error
	if err := r.currentFile.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close log file: %w", err))
	}
	r.currentFile = nil

	backup := filepath.Join(r.dir, r.name+"."+r.now().Format(backupSuffix))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			errs = append(errs, fmt.Errorf("compress %s: %w", backup, err))
		} else if err := os.Remove(backup); err != nil {
			errs = append(errs, err)
		}
	}

	errs = append(errs, r.prune()...)
	if err := r.open(); err != nil {
		return err
	}
	// Housekeeping failures must not lose the log line being written.
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "pinboard: log rotation: %v\n", errors.Join(errs...))
	}
	return nil
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := os.OpenFile(path+compressedExt, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// prune removes backups older than maxAge, then the oldest ones beyond
// maxBackups.
func (r *FileRotator) prune() []error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return []error{err}
	}

	var (
		errs    []error
		backups []os.FileInfo
	)
	now := r.now()
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			if err := os.Remove(filepath.Join(r.dir, e.Name())); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return errs
	}
	slices.SortFunc(backups, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		if err := os.Remove(filepath.Join(r.dir, info.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Close closes the active file.
func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
