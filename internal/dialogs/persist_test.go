/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package dialogs

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

func TestPresetsSurviveFileStore(t *testing.T) {
	store := &config.FileStore{Path: filepath.Join(t.TempDir(), "config.yaml")}
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g, err := NewGlobalSettingsEditor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Open(g, WithCommitHook(store.Save))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	panel := g.Base().Panel()
	panel.ApplyParams(domain.ScaleParams{Width: 320, Height: 0, Quality: 60})
	g.Base().Presets().Add("small")
	g.Base().Presets().Add("small")
	panel.ApplyParams(domain.ScaleParams{Width: 0, Height: 900, Quality: 90})
	g.Base().Presets().Add("tall")
	saved := g.Base().Presets().AsList()
	if _, err := s.Accept(); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	paste, err := NewPasteEditor(reloaded, domain.ImageDimensions{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	bulk, err := NewBulkConvertEditor(reloaded, sampleNotes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	global, err := NewGlobalSettingsEditor(reloaded)
	if err != nil {
		t.Fatal(err)
	}
	editors := []interface {
		Editor
		Base() *Base
	}{global, paste, bulk}
	for _, e := range editors {
		t.Run(e.Name(), func(t *testing.T) {
			if _, err := Open(e); err != nil {
				t.Fatalf("Open after saving presets: %v", err)
			}
			if got := e.Base().Presets().AsList(); !reflect.DeepEqual(got, saved) {
				t.Fatalf("presets after reload = %+v, want %+v", got, saved)
			}
			if got := e.Base().Panel().Params(); got != (domain.ScaleParams{Width: 0, Height: 900, Quality: 90}) {
				t.Fatalf("panel after reload = %+v", got)
			}
		})
	}
}
