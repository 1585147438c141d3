// Package platform resolves console style drive paths ("sd:/...", "usb:/...")
// onto host directories and processes the application arguments.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	PrefixSD  = "sd:"
	PrefixUSB = "usb:"

	// MountRetries is how often a drive mount is attempted.
	MountRetries = 3
)

var (
	ErrMountFailed = errors.New("platform: mount failed")
	ErrNoDrive     = errors.New("platform: no such drive")
	ErrNotMounted  = errors.New("platform: drive not mounted")
)

// Device is storage that can be mounted under a drive prefix.
type Device interface {
	Mount() error
	Unmount()
	// Dir is the host directory holding the drive's root.
	Dir() string
}

// DirDevice serves a drive from a host directory.
type DirDevice struct {
	Path string
}

func (d DirDevice) Mount() error {
	fi, err := os.Stat(d.Path)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", d.Path)
	}
	return nil
}

func (d DirDevice) Unmount()    {}
func (d DirDevice) Dir() string { return d.Path }

// Drives maps drive prefixes to devices and tracks which are mounted.
type Drives struct {
	// RetryDelay is waited between failed mount attempts.
	RetryDelay time.Duration

	mu      sync.Mutex
	devices map[string]Device
	mounted map[string]bool
}

func NewDrives() *Drives {
	return &Drives{
		devices: make(map[string]Device),
		mounted: make(map[string]bool),
	}
}

// Register makes dev available under prefix ("sd:" or "usb:").
func (d *Drives) Register(prefix string, dev Device) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.devices[normalizePrefix(prefix)] = dev
}

// Mount mounts the drive, trying up to retries times. Mounting a mounted
// drive does nothing.
func (d *Drives) Mount(prefix string, retries int) error {
	prefix = normalizePrefix(prefix)
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mounted[prefix] {
		return nil
	}
	dev, ok := d.devices[prefix]
	if !ok {
		return fmt.Errorf("%s: %w", prefix, ErrNoDrive)
	}
	if retries < 1 {
		retries = 1
	}

	var err error
	for i := 0; i < retries; i++ {
		if i > 0 && d.RetryDelay > 0 {
			time.Sleep(d.RetryDelay)
		}
		if err = dev.Mount(); err == nil {
			d.mounted[prefix] = true
			return nil
		}
	}
	return fmt.Errorf("%s: %w: %w", prefix, ErrMountFailed, err)
}

// MountPath mounts the drive that path lives on.
func (d *Drives) MountPath(path string, retries int) error {
	prefix, _, ok := SplitPrefix(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNoDrive)
	}
	return d.Mount(prefix, retries)
}

func (d *Drives) Unmount(prefix string) {
	prefix = normalizePrefix(prefix)
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.mounted[prefix] {
		return
	}
	if dev, ok := d.devices[prefix]; ok {
		dev.Unmount()
	}
	delete(d.mounted, prefix)
}

// UnmountAll unmounts every mounted drive.
func (d *Drives) UnmountAll() {
	d.mu.Lock()
	prefixes := make([]string, 0, len(d.mounted))
	for p := range d.mounted {
		prefixes = append(prefixes, p)
	}
	d.mu.Unlock()

	for _, p := range prefixes {
		d.Unmount(p)
	}
}

func (d *Drives) Mounted(prefix string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted[normalizePrefix(prefix)]
}

// Resolve maps a drive path onto the host file system. The drive must be
// mounted.
func (d *Drives) Resolve(path string) (string, error) {
	prefix, rest, ok := SplitPrefix(path)
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrNoDrive)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	dev, ok := d.devices[prefix]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrNoDrive)
	}
	if !d.mounted[prefix] {
		return "", fmt.Errorf("%s: %w", path, ErrNotMounted)
	}
	rest = strings.TrimLeft(rest, "/")
	return filepath.Join(dev.Dir(), filepath.FromSlash(rest)), nil
}

// SplitPrefix splits "SD:/a/b" into "sd:" and "/a/b". The prefix is
// lower-cased.
func SplitPrefix(path string) (prefix, rest string, ok bool) {
	i := strings.IndexByte(path, ':')
	if i <= 0 || strings.ContainsRune(path[:i], '/') {
		return "", path, false
	}
	return strings.ToLower(path[:i+1]), path[i+1:], true
}

func normalizePrefix(p string) string {
	p = strings.ToLower(p)
	if !strings.HasSuffix(p, ":") {
		p += ":"
	}
	return p
}
