/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jcznk/PasteImagesAsWebP/internal/collection"
	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/dialogs"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
	"github.com/jcznk/PasteImagesAsWebP/internal/imagesrc"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
	"github.com/jcznk/PasteImagesAsWebP/internal/ui"
)

const defaultCollection = "collection.sqlite"

func configCommand(w io.Writer, store *config.FileStore, sub string) error {
	switch sub {
	case "show":
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		for _, k := range cfg.Keys() {
			if env, ok := config.EnvOverrideFor(k); ok {
				_, _ = fmt.Fprintf(w, "# %s overridden by %s\n", k, env)
			}
		}
		return err
	case "path":
		_, err := fmt.Fprintln(w, store.Path)
		return err
	case "reset":
		if err := store.Save(config.Defaults()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "Configuration reset to defaults at", store.Path)
		return err
	default:
		return fmt.Errorf("unknown config command %q (want show, path or reset)", sub)
	}
}

func probeCommand(w io.Writer, path string) error {
	info, err := imagesrc.ProbeFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %s (%s)\n", path, info.Size, info.Format)
	return err
}

// scaleCommand runs a paste dialog without a window: open, press the
// button for factor, accept and persist.
func scaleCommand(w io.Writer, store config.Store, imagePath string, factor float64) error {
	button := -1
	for i, f := range dialogs.ScaleFactors {
		if f == factor {
			button = i
		}
	}
	if button < 0 {
		labels := make([]string, len(dialogs.ScaleFactors))
		for i, f := range dialogs.ScaleFactors {
			labels[i] = dialogs.ScaleFactorLabel(f)
		}
		return fmt.Errorf("unsupported factor %v (want one of %s)", factor, strings.Join(labels, ", "))
	}
	info, err := imagesrc.ProbeFile(imagePath)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	e, err := dialogs.NewPasteEditor(cfg, info.Size)
	if err != nil {
		return err
	}
	s, err := dialogs.Open(e, dialogs.WithCommitHook(store.Save))
	if err != nil {
		return err
	}
	e.PressScale(button)
	cfg, err = s.Accept()
	if err != nil {
		return err
	}
	params := e.Base().Panel().Params()
	avoid, err := cfg.Bool(config.KeyAvoidUpscaling)
	if err != nil {
		return err
	}
	target := imagesrc.TargetSize(info.Size, params, avoid)
	_, err = fmt.Fprintf(w, "width=%d height=%d quality=%d\nconverted size: %s\n", params.Width, params.Height, params.Quality, target)
	return err
}

func openCollection(ctx context.Context, path string) (collection.Provider, error) {
	if dsn := strings.TrimSpace(os.Getenv(collection.EnvPostgresDSN)); dsn != "" && path == "" {
		return collection.OpenPostgres(ctx, dsn)
	}
	if path == "" {
		path = defaultCollection
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("collection %s does not exist", path)
	}
	return collection.OpenSQLite(path)
}

func loadNotes(path string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p, err := openCollection(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = p.Close() }()
	return p.Notes(ctx, nil)
}

func fieldsCommand(w io.Writer, path string) error {
	notes, err := loadNotes(path)
	if err != nil {
		return err
	}
	for _, name := range domain.FieldNames(notes) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func settingsCommand(store config.Store) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	return ui.Run(func(dialogs.Notifier) (dialogs.Editor, error) {
		return dialogs.NewGlobalSettingsEditor(cfg)
	}, dialogs.WithCommitHook(store.Save))
}

func pasteCommand(store config.Store, imagePath string) error {
	info, err := imagesrc.ProbeFile(imagePath)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	return ui.Run(func(dialogs.Notifier) (dialogs.Editor, error) {
		return dialogs.NewPasteEditor(cfg, info.Size)
	}, dialogs.WithCommitHook(store.Save))
}

func bulkCommand(store config.Store, path string) error {
	notes, err := loadNotes(path)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	l := applog.WithComponent("cli")
	var editor *dialogs.BulkConvertEditor
	err = ui.Run(func(n dialogs.Notifier) (dialogs.Editor, error) {
		e, err := dialogs.NewBulkConvertEditor(cfg, notes, n)
		editor = e
		return e, err
	}, dialogs.WithCommitHook(func(m config.Map) error {
		if err := store.Save(m); err != nil {
			return err
		}
		l.Info("bulk convert configured",
			slog.Int("notes", len(editor.SelectedNotes())),
			slog.Any("fields", editor.SelectedFields()))
		return nil
	}))
	return err
}
