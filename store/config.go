package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ConfigHandler receives the values of a config file and writes them back.
type ConfigHandler interface {
	ReadValue(name, value string)
	WriteConfig(w io.Writer) error
}

// ReadConfig parses name=value lines. Both sides are trimmed and the split
// happens at the first '='. Lines without '=' or with an empty name are
// skipped.
func ReadConfig(r io.Reader, h ConfigHandler) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		h.ReadValue(name, strings.TrimSpace(value))
	}
	return sc.Err()
}

// WriteConfig lets h write its values to w.
func WriteConfig(w io.Writer, h ConfigHandler) error {
	bw := bufio.NewWriter(w)
	if err := h.WriteConfig(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteValue writes one name=value line. Values are formatted with %v.
func WriteValue(w io.Writer, name string, value any) error {
	_, err := fmt.Fprintf(w, "%s=%v\n", name, value)
	return err
}

// Values is a ConfigHandler that keeps every value. It is written in name
// order.
type Values map[string]string

func (v Values) ReadValue(name, value string) { v[name] = value }

func (v Values) WriteConfig(w io.Writer) error {
	names := make([]string, 0, len(v))
	for n := range v {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := WriteValue(w, n, v[n]); err != nil {
			return err
		}
	}
	return nil
}

// ConfigFile is a config file stored in a backend.
type ConfigFile struct {
	Backend Backend
	Name    string
}

// Read loads the file into h. A missing file returns an error wrapping
// ErrNotFound, in which case h keeps its defaults.
func (f ConfigFile) Read(h ConfigHandler) error {
	data, err := f.Backend.Load(f.Name)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return ReadConfig(bytes.NewReader(data), h)
}

func (f ConfigFile) Write(h ConfigHandler) error {
	var buf bytes.Buffer
	if err := WriteConfig(&buf, h); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := f.Backend.Save(f.Name, buf.Bytes()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
