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
	"reflect"
	"testing"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

func TestDefaultsSatisfySchema(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("Validate(Defaults()) = %v", err)
	}
}

func TestIntAcceptsNumericKinds(t *testing.T) {
	m := Map{"a": 3, "b": int64(4), "c": float64(5), "d": 2.5, "e": "x"}
	for key, want := range map[string]int{"a": 3, "b": 4, "c": 5} {
		got, err := m.Int(key)
		if err != nil || got != want {
			t.Fatalf("Int(%q) = %d, %v; want %d", key, got, err, want)
		}
	}
	for _, key := range []string{"d", "e"} {
		if _, err := m.Int(key); !errors.Is(err, ErrWrongType) {
			t.Fatalf("Int(%q) error = %v, want ErrWrongType", key, err)
		}
	}
}

func TestMissingKeyIsReported(t *testing.T) {
	m := Map{}
	_, err := m.Int(KeyImageWidth)
	if !errors.Is(err, ErrKeyMissing) {
		t.Fatalf("Int on empty map error = %v, want ErrKeyMissing", err)
	}
	var ke *KeyError
	if !errors.As(err, &ke) || ke.Key != KeyImageWidth {
		t.Fatalf("expected *KeyError for %q, got %#v", KeyImageWidth, err)
	}
	if _, err := m.Bool(KeyCopyPaste); !errors.Is(err, ErrKeyMissing) {
		t.Fatalf("Bool error = %v", err)
	}
	if _, err := m.Text(KeyShowSettings); !errors.Is(err, ErrKeyMissing) {
		t.Fatalf("Text error = %v", err)
	}
}

func TestStringsFromDecodedList(t *testing.T) {
	m := Map{KeyBulkConvertFields: []any{"Front", "Back"}}
	got, err := m.Strings(KeyBulkConvertFields)
	if err != nil {
		t.Fatalf("Strings: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Front", "Back"}) {
		t.Fatalf("Strings = %v", got)
	}
	m[KeyBulkConvertFields] = []any{"Front", 3}
	if _, err := m.Strings(KeyBulkConvertFields); !errors.Is(err, ErrWrongType) {
		t.Fatalf("Strings mixed list error = %v", err)
	}
}

func TestPresetsEncodeDecodeKeepsOrderAndDuplicates(t *testing.T) {
	in := []domain.Preset{
		{Name: "small", Params: domain.ScaleParams{Width: 0, Height: 200, Quality: 20}},
		{Name: "big", Params: domain.ScaleParams{Width: 1600, Height: 0, Quality: 80}},
		{Name: "small", Params: domain.ScaleParams{Width: 100, Height: 100, Quality: 50}},
	}
	m := Map{KeySavedPresets: EncodePresets(in)}
	got, err := m.Presets(KeySavedPresets)
	if err != nil {
		t.Fatalf("Presets: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Presets = %+v, want %+v", got, in)
	}
}

func TestPresetsRejectsMalformedRecord(t *testing.T) {
	m := Map{KeySavedPresets: []any{map[string]any{"name": "x"}}}
	if _, err := m.Presets(KeySavedPresets); !errors.Is(err, ErrWrongType) {
		t.Fatalf("Presets error = %v, want ErrWrongType", err)
	}
}

func TestPresetsAcceptNamedMapRecords(t *testing.T) {
	m := Map{KeySavedPresets: []any{
		Map{"name": "a", "params": Map{KeyImageWidth: 1, KeyImageHeight: 2, KeyImageQuality: 3}},
		map[string]any{"name": "a", "params": Map{KeyImageWidth: 4, KeyImageHeight: 5, KeyImageQuality: 6}},
	}}
	got, err := m.Presets(KeySavedPresets)
	if err != nil {
		t.Fatalf("Presets: %v", err)
	}
	want := []domain.Preset{
		{Name: "a", Params: domain.ScaleParams{Width: 1, Height: 2, Quality: 3}},
		{Name: "a", Params: domain.ScaleParams{Width: 4, Height: 5, Quality: 6}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Presets = %+v, want %+v", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Defaults()
	orig[KeyBulkConvertFields] = []any{"Front"}
	c := orig.Clone()
	c[KeyBulkConvertFields].([]any)[0] = "Back"
	c[KeyImageWidth] = 99
	if orig[KeyBulkConvertFields].([]any)[0] != "Front" || orig[KeyImageWidth] != 0 {
		t.Fatalf("Clone shares state with original: %v", orig)
	}
	if orig.Equal(c) {
		t.Fatalf("Equal reported modified clone as equal")
	}
	if !orig.Equal(orig.Clone()) {
		t.Fatalf("Equal(Clone()) = false")
	}
}

func TestValidateReportsMissingKey(t *testing.T) {
	m := Defaults()
	delete(m, KeyAvoidUpscaling)
	err := Validate(m)
	var ke *KeyError
	if !errors.As(err, &ke) || !errors.Is(err, ErrKeyMissing) || ke.Key != KeyAvoidUpscaling {
		t.Fatalf("Validate error = %v, want missing %q", err, KeyAvoidUpscaling)
	}
}

func TestValidateRejectsOutOfRangeAndUnknownEnum(t *testing.T) {
	m := Defaults()
	m[KeyImageQuality] = 150
	m[KeyShowSettings] = "sometimes"
	err := Validate(m)
	var se *SchemaError
	if !errors.As(err, &se) || !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate error = %v, want *SchemaError", err)
	}
	if len(se.Problems) < 2 {
		t.Fatalf("problems = %v, want both violations", se.Problems)
	}
}
