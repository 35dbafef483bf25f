/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package collection

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

func seed(t *testing.T, s *Store) []int64 {
	t.Helper()
	ctx := context.Background()
	var ids []int64
	for _, fields := range [][]domain.Field{
		{{Name: "Front", Value: "cat"}, {Name: "Back", Value: "<img src=\"cat.png\">"}},
		{{Name: "Front", Value: "dog"}, {Name: "Image", Value: ""}},
		nil,
	} {
		id, err := s.AddNote(ctx, fields)
		if err != nil {
			t.Fatalf("AddNote: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func openSQLiteForTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "collection.sqlite"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func exerciseStore(t *testing.T, s *Store) {
	ctx := context.Background()
	ids := seed(t, s)

	got, err := s.NoteIDs(ctx)
	if err != nil {
		t.Fatalf("NoteIDs: %v", err)
	}
	if !reflect.DeepEqual(got, ids) {
		t.Fatalf("NoteIDs = %v, want %v", got, ids)
	}

	notes, err := s.Notes(ctx, []int64{ids[1], ids[0]})
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != ids[0] || notes[1].Keys()[1] != "Image" {
		t.Fatalf("Notes = %+v", notes)
	}
	if notes[0].Fields[1].Value != "<img src=\"cat.png\">" {
		t.Fatalf("field value not preserved: %q", notes[0].Fields[1].Value)
	}

	all, err := s.Notes(ctx, nil)
	if err != nil || len(all) != 3 || len(all[2].Fields) != 0 {
		t.Fatalf("Notes(all) = %+v, %v", all, err)
	}

	names, err := FieldNames(ctx, s, ids[:2])
	if err != nil {
		t.Fatalf("FieldNames: %v", err)
	}
	if want := []string{"Back", "Front", "Image"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("FieldNames = %v, want %v", names, want)
	}

	if _, err := s.Notes(ctx, []int64{ids[0], 999999}); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("Notes(missing) = %v, want ErrNoteNotFound", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, openSQLiteForTest(t))
}

func TestSQLiteReopenKeepsNotesAndVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "collection.sqlite")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	seed(t, s)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()
	ids, err := s.NoteIDs(context.Background())
	if err != nil || len(ids) != 3 {
		t.Fatalf("NoteIDs after reopen = %v, %v", ids, err)
	}
	v, err := s.SchemaVersion(context.Background())
	if err != nil || v != sqliteSchemaVersion {
		t.Fatalf("SchemaVersion = %d, %v", v, err)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMigrationVersion(t *testing.T) {
	if v, err := migrationVersion("0001_notes.sql"); err != nil || v != 1 {
		t.Fatalf("migrationVersion = %d, %v", v, err)
	}
	for _, bad := range []string{"notes.sql", "x1_notes.sql"} {
		if _, err := migrationVersion(bad); err == nil {
			t.Fatalf("migrationVersion(%q) expected error", bad)
		}
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv(EnvPostgresDSN)
	if dsn == "" {
		t.Skipf("%s not set", EnvPostgresDSN)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	defer func() { _ = s.Close() }()
	if _, err := s.DB().Exec(`TRUNCATE notes RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	exerciseStore(t, s)
}
