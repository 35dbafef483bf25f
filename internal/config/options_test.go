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
	"testing"
)

func TestShowOptionsRoundTrip(t *testing.T) {
	for _, o := range ShowOptions() {
		got, err := ParseShowOption(o.Value())
		if err != nil || got != o {
			t.Fatalf("ParseShowOption(%q) = %v, %v", o.Value(), got, err)
		}
		if o.Label() == "" {
			t.Fatalf("option %d has no label", o)
		}
	}
	if _, err := ParseShowOption("sometimes"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("ParseShowOption unknown error = %v", err)
	}
	if ShowOption(42).Value() != "" {
		t.Fatalf("out-of-range option must have no value")
	}
}

func TestFilenamePatternAt(t *testing.T) {
	for i, p := range FilenamePatterns() {
		got, err := FilenamePatternAt(i)
		if err != nil || got != p || got.Index() != i {
			t.Fatalf("FilenamePatternAt(%d) = %v, %v", i, got, err)
		}
	}
	if got, want := FilenameSortField.Label(), "{sort_field}_{date_time}"; got != want {
		t.Fatalf("Label() = %q, want %q", got, want)
	}
	if _, err := FilenamePatternAt(3); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("FilenamePatternAt(3) error = %v", err)
	}
	if _, err := FilenamePatternAt(-1); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("FilenamePatternAt(-1) error = %v", err)
	}
}
