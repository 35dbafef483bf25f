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
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

// Keys of the add-on configuration map.
const (
	KeyImageWidth                = "image_width"
	KeyImageHeight               = "image_height"
	KeyImageQuality              = "image_quality"
	KeyMaxImageWidth             = "max_image_width"
	KeyMaxImageHeight            = "max_image_height"
	KeySavedPresets              = "saved_presets"
	KeyBulkConvertFields         = "bulk_convert_fields"
	KeyBulkReconvertWebP         = "bulk_reconvert_webp"
	KeyShowSettings              = "show_settings"
	KeyFilenamePatternNum        = "filename_pattern_num"
	KeyDragAndDrop               = "drag_and_drop"
	KeyCopyPaste                 = "copy_paste"
	KeyAvoidUpscaling            = "avoid_upscaling"
	KeyPreserveOriginalFilenames = "preserve_original_filenames"
)

// MaxQuality is the upper bound of the quality parameter.
const MaxQuality = 100

var (
	// ErrKeyMissing reports a read of a key that has no value and no default.
	// It means the defaults contract was broken; it is not a user error.
	ErrKeyMissing = errors.New("configuration key missing")
	// ErrWrongType reports a value whose kind does not match the accessor.
	ErrWrongType = errors.New("configuration value has wrong type")
)

// KeyError describes a failed typed read of a configuration key.
type KeyError struct {
	Key  string
	Want string
	Err  error
}

func (e *KeyError) Error() string {
	if errors.Is(e.Err, ErrKeyMissing) {
		return fmt.Sprintf("config: key %q missing", e.Key)
	}
	return fmt.Sprintf("config: key %q: want %s: %v", e.Key, e.Want, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// Map is the add-on configuration: string keys to ints, bools, strings and
// ordered lists. A Map is loaded once, handed to a dialog, mutated only by a
// successful commit and persisted by the caller.
type Map map[string]any

// Defaults returns a fresh map holding a default for every key the dialogs read.
func Defaults() Map {
	return Map{
		KeyImageWidth:                0,
		KeyImageHeight:               200,
		KeyImageQuality:              20,
		KeyMaxImageWidth:             1920,
		KeyMaxImageHeight:            1920,
		KeySavedPresets:              []any{},
		KeyBulkConvertFields:         []any{},
		KeyBulkReconvertWebP:         false,
		KeyShowSettings:              ShowAlways.Value(),
		KeyFilenamePatternNum:        0,
		KeyDragAndDrop:               true,
		KeyCopyPaste:                 true,
		KeyAvoidUpscaling:            true,
		KeyPreserveOriginalFilenames: false,
	}
}

func (m Map) lookup(key, want string) (any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, &KeyError{Key: key, Want: want, Err: ErrKeyMissing}
	}
	return v, nil
}

// Int reads an integer. Whole floats (JSON numbers) are accepted.
func (m Map) Int(key string) (int, error) {
	v, err := m.lookup(key, "int")
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, &KeyError{Key: key, Want: "int", Err: fmt.Errorf("%w: %T", ErrWrongType, v)}
}

// Bool reads a boolean.
func (m Map) Bool(key string) (bool, error) {
	v, err := m.lookup(key, "bool")
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &KeyError{Key: key, Want: "bool", Err: fmt.Errorf("%w: %T", ErrWrongType, v)}
	}
	return b, nil
}

// Text reads a string.
func (m Map) Text(key string) (string, error) {
	v, err := m.lookup(key, "string")
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &KeyError{Key: key, Want: "string", Err: fmt.Errorf("%w: %T", ErrWrongType, v)}
	}
	return s, nil
}

// Strings reads an ordered list of strings.
func (m Map) Strings(key string) ([]string, error) {
	v, err := m.lookup(key, "list of strings")
	if err != nil {
		return nil, err
	}
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &KeyError{Key: key, Want: "list of strings", Err: fmt.Errorf("%w: item %d is %T", ErrWrongType, i, item)}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, &KeyError{Key: key, Want: "list of strings", Err: fmt.Errorf("%w: %T", ErrWrongType, v)}
}

// Presets reads an ordered list of preset records.
func (m Map) Presets(key string) ([]domain.Preset, error) {
	v, err := m.lookup(key, "list of presets")
	if err != nil {
		return nil, err
	}
	switch list := v.(type) {
	case []domain.Preset:
		return append([]domain.Preset(nil), list...), nil
	case []any:
		out := make([]domain.Preset, 0, len(list))
		for i, item := range list {
			p, err := decodePreset(item)
			if err != nil {
				return nil, &KeyError{Key: key, Want: "list of presets", Err: fmt.Errorf("item %d: %w", i, err)}
			}
			out = append(out, p)
		}
		return out, nil
	}
	return nil, &KeyError{Key: key, Want: "list of presets", Err: fmt.Errorf("%w: %T", ErrWrongType, v)}
}

func decodePreset(item any) (domain.Preset, error) {
	rec, ok := asRecord(item)
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %T", ErrWrongType, item)
	}
	name, _ := rec["name"].(string)
	pm, ok := asRecord(rec["params"])
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: params is %T", ErrWrongType, rec["params"])
	}
	var p domain.Preset
	p.Name = name
	var err error
	if p.Params.Width, err = pm.Int(KeyImageWidth); err != nil {
		return domain.Preset{}, err
	}
	if p.Params.Height, err = pm.Int(KeyImageHeight); err != nil {
		return domain.Preset{}, err
	}
	if p.Params.Quality, err = pm.Int(KeyImageQuality); err != nil {
		return domain.Preset{}, err
	}
	return p, nil
}

// asRecord accepts a nested mapping in either of the shapes decoders produce.
func asRecord(v any) (Map, bool) {
	switch t := v.(type) {
	case map[string]any:
		return Map(t), true
	case Map:
		return t, true
	}
	return nil, false
}

// EncodePresets converts presets to the list-of-records shape stored in the map.
func EncodePresets(presets []domain.Preset) []any {
	out := make([]any, 0, len(presets))
	for _, p := range presets {
		out = append(out, map[string]any{
			"name": p.Name,
			"params": map[string]any{
				KeyImageWidth:   p.Params.Width,
				KeyImageHeight:  p.Params.Height,
				KeyImageQuality: p.Params.Quality,
			},
		})
	}
	return out
}

// EncodeStrings converts a string list to the stored list shape.
func EncodeStrings(items []string) []any {
	out := make([]any, 0, len(items))
	for _, s := range items {
		out = append(out, s)
	}
	return out
}

// Update copies every key of src into m.
func (m Map) Update(src Map) {
	for k, v := range src {
		m[k] = cloneValue(v)
	}
}

// Clone returns a deep copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case Map:
		return t.Clone()
	case []string:
		return append([]string(nil), t...)
	case []domain.Preset:
		return append([]domain.Preset(nil), t...)
	default:
		return v
	}
}

// Keys returns the map's keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Marshal renders the map as YAML. Keys are emitted sorted, so equal maps
// produce identical bytes.
func (m Map) Marshal() ([]byte, error) {
	return yaml.Marshal(map[string]any(m))
}

// Equal reports whether both maps serialize to the same bytes.
func (m Map) Equal(o Map) bool {
	a, errA := m.Marshal()
	b, errB := o.Marshal()
	return errA == nil && errB == nil && string(a) == string(b)
}
