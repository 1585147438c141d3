package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// SaveRetries is how often a save is attempted before giving up. Writes on
// the SD stack occasionally land under a mangled name, so every attempt is
// verified.
const SaveRetries = 5

var (
	ErrNoSnapshotName = errors.New("store: no snapshot name")
	ErrSnapshotFailed = errors.New("store: snapshot was not written")
)

// Status messages reported through a StatusSink.
const (
	MsgSaved        = "Successfully saved state."
	MsgSaveFailed   = "An error occurred attempting to save state."
	MsgDeleted      = "Successfully deleted saved state."
	MsgDeleteFailed = "An error occurred attempting to delete saved state."
)

// SnapshotHost produces save states for the running game.
type SnapshotHost interface {
	// SnapshotName derives the save file name for a ROM path.
	SnapshotName(rom string) string
	SaveState(w io.Writer) error
}

// StatusSink shows a short message to the user. menu.Session implements it.
type StatusSink interface {
	SetStatus(msg string)
}

type Snapshots struct {
	Backend Backend
	Host    SnapshotHost
	// Retries defaults to SaveRetries.
	Retries int
}

func (s *Snapshots) name(savefile, rom string) string {
	if savefile != "" {
		return savefile
	}
	if rom != "" {
		return s.Host.SnapshotName(rom)
	}
	return ""
}

// Save writes the current state to savefile, or to the snapshot name of rom
// when savefile is empty. Each attempt removes the old file, saves and then
// checks that the file exists.
func (s *Snapshots) Save(savefile, rom string) error {
	name := s.name(savefile, rom)
	if name == "" {
		return ErrNoSnapshotName
	}
	retries := s.Retries
	if retries <= 0 {
		retries = SaveRetries
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		_ = s.Backend.Remove(name)

		var buf bytes.Buffer
		if err := s.Host.SaveState(&buf); err != nil {
			lastErr = err
			continue
		}
		if err := s.Backend.Save(name, buf.Bytes()); err != nil {
			lastErr = err
			continue
		}
		if err := s.Check(name); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = ErrSnapshotFailed
	}
	return fmt.Errorf("save %s after %d attempts: %w", name, retries, errors.Join(ErrSnapshotFailed, lastErr))
}

// Check reports whether name holds a snapshot. Only existence is verified.
func (s *Snapshots) Check(name string) error {
	if !s.Backend.Exists(name) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

// Exists reports whether rom has a saved state.
func (s *Snapshots) Exists(rom string) bool {
	if rom == "" {
		return false
	}
	return s.Check(s.Host.SnapshotName(rom)) == nil
}

// Load returns the saved state of rom.
func (s *Snapshots) Load(rom string) ([]byte, error) {
	if rom == "" {
		return nil, ErrNoSnapshotName
	}
	return s.Backend.Load(s.Host.SnapshotName(rom))
}

// Delete removes the saved state of rom.
func (s *Snapshots) Delete(rom string) error {
	if rom == "" {
		return ErrNoSnapshotName
	}
	return s.Backend.Remove(s.Host.SnapshotName(rom))
}

// SaveAndReport is Save followed by a status message.
func (s *Snapshots) SaveAndReport(savefile, rom string, status StatusSink) error {
	err := s.Save(savefile, rom)
	if status != nil {
		if err != nil {
			status.SetStatus(MsgSaveFailed)
		} else {
			status.SetStatus(MsgSaved)
		}
	}
	return err
}

// DeleteAndReport is Delete followed by a status message. Without a ROM
// nothing happens and nothing is reported.
func (s *Snapshots) DeleteAndReport(rom string, status StatusSink) error {
	if rom == "" {
		return ErrNoSnapshotName
	}
	err := s.Delete(rom)
	if status != nil {
		if err != nil {
			status.SetStatus(MsgDeleteFailed)
		} else {
			status.SetStatus(MsgDeleted)
		}
	}
	return err
}
