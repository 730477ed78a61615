// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gioui.org/draggable"
)

// States are the saved states of buttons by name.
type States map[string]draggable.SavedState

type stateFile struct {
	Buttons States `toml:"button"`
}

// EncodeState writes s to w as TOML.
func EncodeState(w io.Writer, s States) error {
	if err := toml.NewEncoder(w).Encode(stateFile{Buttons: s}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DecodeState reads states written by EncodeState.
func DecodeState(r io.Reader) (States, error) {
	var f stateFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for name, s := range f.Buttons {
		if len(s.PayloadKeys) != len(s.PayloadHostIDs) {
			return nil, fmt.Errorf("config: button %q: %d payload keys for %d ids", name, len(s.PayloadKeys), len(s.PayloadHostIDs))
		}
	}
	if f.Buttons == nil {
		f.Buttons = make(States)
	}
	return f.Buttons, nil
}

// SaveStateFile writes s to the file at path, replacing it atomically.
func SaveStateFile(path string, s States) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".state-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := EncodeState(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadStateFile reads the states at path. A missing file holds no
// states.
func LoadStateFile(path string) (States, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(States), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeState(f)
}

// StateDir returns the directory for the saved state of app, under
// $XDG_STATE_HOME if set and the user cache directory otherwise.
func StateDir(app string) (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, app), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app), nil
}
