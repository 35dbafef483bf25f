/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
)

// Environment variables honoured by the file store.
const (
	EnvConfigPath   = "PIW_CONFIG"
	EnvImageQuality = "PIW_IMAGE_QUALITY"
	EnvShowSettings = "PIW_SHOW_SETTINGS"
)

// Store loads and persists the configuration map. The dialogs never call it;
// the caller loads once and saves after a successful commit.
type Store interface {
	Load() (Map, error)
	Save(Map) error
}

// FileStore keeps the map as a YAML document on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a store at path, or at ConfigPath() when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{Path: path}, nil
}

// ConfigPath returns the per-user config file path; PIW_CONFIG overrides it.
func ConfigPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "pasteimages", "config.yaml"), nil
}

// Load returns defaults merged with the file (if present) and environment
// overrides. Keys unknown to this version are kept so they survive a save.
func (s *FileStore) Load() (Map, error) {
	l := applog.WithOperation(applog.WithComponent("config"), "load").With(slog.String("path", s.Path))
	cfg := Defaults()
	data, err := os.ReadFile(s.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		l.Debug("no config file, using defaults")
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		// Decode into a plain map so nested records stay map[string]any.
		var fileCfg map[string]any
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", s.Path, err)
		}
		mergeInto(cfg, fileCfg)
	}
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		l.Error("config rejected", slog.Any("err", err))
		return nil, err
	}
	l.Debug("config loaded", slog.Int("keys", len(cfg)))
	return cfg, nil
}

// Save validates m and writes it atomically.
func (s *FileStore) Save(m Map) error {
	if err := Validate(m); err != nil {
		return err
	}
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	applog.WithComponent("config").Info("config saved", slog.String("path", s.Path))
	return nil
}

// mergeInto copies file values over defaults. A null in the file keeps the default.
func mergeInto(dst, src Map) {
	for k, v := range src {
		if v == nil {
			continue
		}
		dst[k] = v
	}
}

func applyEnvOverrides(cfg Map) {
	if v := strings.TrimSpace(os.Getenv(EnvImageQuality)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg[KeyImageQuality] = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvShowSettings)); v != "" {
		if o, err := ParseShowOption(strings.ToLower(v)); err == nil {
			cfg[KeyShowSettings] = o.Value()
		}
	}
}

// EnvOverrideFor returns the env var name if the key is overridden by the environment.
func EnvOverrideFor(key string) (string, bool) {
	switch key {
	case KeyImageQuality:
		if os.Getenv(EnvImageQuality) != "" {
			return EnvImageQuality, true
		}
	case KeyShowSettings:
		if os.Getenv(EnvShowSettings) != "" {
			return EnvShowSettings, true
		}
	}
	return "", false
}

// MemoryStore keeps the map in memory; Save stores a deep copy.
type MemoryStore struct {
	Saved Map
	Saves int
}

func (s *MemoryStore) Load() (Map, error) {
	if s.Saved == nil {
		return Defaults(), nil
	}
	return s.Saved.Clone(), nil
}

func (s *MemoryStore) Save(m Map) error {
	s.Saved = m.Clone()
	s.Saves++
	return nil
}
