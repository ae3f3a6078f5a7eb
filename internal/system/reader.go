// Package system reads kernel counters from a proc filesystem. Every
// accessor degrades to a zero value when the underlying file is missing or
// malformed, so a process vanishing mid-listing never aborts a refresh.
package system

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/procfs"

	"procwatch/internal/logger"
)

const (
	DefaultProcRoot      = "/proc"
	DefaultPasswdPath    = "/etc/passwd"
	DefaultOSReleasePath = "/etc/os-release"
)

// Reader implements monitor.CounterSource on top of /proc.
type Reader struct {
	fs       procfs.FS
	procRoot string

	osReleasePath string
	clk           float64
	hostPlatform  func() (string, error)

	users *userDB
	log   logger.Logger
}

type Option func(*Reader)

func WithPasswdPath(path string) Option {
	return func(r *Reader) { r.users = newUserDB(path) }
}

func WithOSReleasePath(path string) Option {
	return func(r *Reader) { r.osReleasePath = path }
}

// WithClockTicks overrides the clock ticks per second reported by sysconf.
func WithClockTicks(hz float64) Option {
	return func(r *Reader) { r.clk = hz }
}

func WithLogger(l logger.Logger) Option {
	return func(r *Reader) { r.log = l }
}

func NewReader(procRoot string, opts ...Option) (*Reader, error) {
	if procRoot == "" {
		procRoot = DefaultProcRoot
	}

	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, fmt.Errorf("open proc root %s: %w", procRoot, err)
	}

	r := &Reader{
		fs:            fs,
		procRoot:      procRoot,
		osReleasePath: DefaultOSReleasePath,
		hostPlatform:  platformInformation,
		users:         newUserDB(DefaultPasswdPath),
		log:           logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.clk <= 0 {
		r.clk = clockTicks(r.log)
	}

	return r, nil
}

// Check verifies that the system-wide counters can be read at all.
func (r *Reader) Check() error {
	if _, err := r.fs.Stat(); err != nil {
		return fmt.Errorf("read %s: %w", r.path("stat"), err)
	}
	return nil
}

func (r *Reader) path(elem ...string) string {
	return filepath.Join(append([]string{r.procRoot}, elem...)...)
}
