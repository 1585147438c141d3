// Package store persists configuration files and save states.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quasilyte/gdata"
)

var ErrNotFound = errors.New("store: item not found")

// Backend stores named blobs. Names use forward slashes and may carry a
// drive prefix when the backend knows how to resolve one.
type Backend interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
	Remove(name string) error
	Exists(name string) bool
}

// DirBackend keeps items as files. Without Resolve, names are relative to
// Root.
type DirBackend struct {
	Root    string
	Resolve func(name string) (string, error)
}

func (b DirBackend) path(name string) (string, error) {
	if b.Resolve != nil {
		return b.Resolve(name)
	}
	return filepath.Join(b.Root, filepath.FromSlash(name)), nil
}

func (b DirBackend) Load(name string) ([]byte, error) {
	p, err := b.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}

func (b DirBackend) Save(name string, data []byte) error {
	p, err := b.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (b DirBackend) Remove(name string) error {
	p, err := b.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return err
}

func (b DirBackend) Exists(name string) bool {
	p, err := b.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// GdataBackend keeps items in the per-user application data directory.
// Removing an item stores an empty value, which reads back as missing.
type GdataBackend struct {
	m *gdata.Manager
}

// OpenGdata opens the data directory for appName.
func OpenGdata(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open app data: %w", err)
	}
	return &GdataBackend{m: m}, nil
}

var keyReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

// itemKey flattens a path into a single item key.
func itemKey(name string) string {
	return keyReplacer.Replace(strings.TrimLeft(name, "/"))
}

func (b *GdataBackend) Load(name string) ([]byte, error) {
	data, err := b.m.LoadItem(itemKey(name))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, nil
}

func (b *GdataBackend) Save(name string, data []byte) error {
	return b.m.SaveItem(itemKey(name), data)
}

func (b *GdataBackend) Remove(name string) error {
	if !b.Exists(name) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return b.m.SaveItem(itemKey(name), nil)
}

func (b *GdataBackend) Exists(name string) bool {
	data, err := b.m.LoadItem(itemKey(name))
	return err == nil && len(data) > 0
}
