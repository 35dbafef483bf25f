/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package collection stores the notes a bulk conversion runs over. The same
// Store works on an embedded SQLite file or a shared Postgres database.
package collection

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
)

// ErrNoteNotFound is returned when a requested note ID does not exist.
var ErrNoteNotFound = errors.New("note not found")

// Provider yields notes for the bulk convert dialog.
type Provider interface {
	NoteIDs(ctx context.Context) ([]int64, error)
	// Notes returns the notes with the given IDs in ID order. An empty ids
	// slice returns every note.
	Notes(ctx context.Context, ids []int64) ([]domain.Note, error)
	AddNote(ctx context.Context, fields []domain.Field) (int64, error)
	Close() error
}

// dialect covers the SQL differences between the supported databases.
type dialect struct {
	name        string
	placeholder func(n int) string
}

var (
	sqliteDialect   = dialect{name: "sqlite", placeholder: func(int) string { return "?" }}
	postgresDialect = dialect{name: "postgres", placeholder: func(n int) string { return fmt.Sprintf("$%d", n) }}
)

// Store is a Provider backed by database/sql.
type Store struct {
	db  *sql.DB
	d   dialect
	log *slog.Logger
}

var _ Provider = (*Store)(nil)

func newStore(db *sql.DB, d dialect) *Store {
	return &Store{db: db, d: d, log: applog.WithComponent("collection").With(slog.String("db", d.name))}
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) NoteIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select note ids: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) Notes(ctx context.Context, ids []int64) ([]domain.Note, error) {
	q := `SELECT id, fields FROM notes`
	args := make([]any, 0, len(ids))
	if len(ids) > 0 {
		marks := make([]string, len(ids))
		for i, id := range ids {
			marks[i] = s.d.placeholder(i + 1)
			args = append(args, id)
		}
		q += " WHERE id IN (" + strings.Join(marks, ", ") + ")"
	}
	q += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var notes []domain.Note
	for rows.Next() {
		var (
			n   domain.Note
			raw string
		)
		if err := rows.Scan(&n.ID, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &n.Fields); err != nil {
			return nil, fmt.Errorf("decode fields of note %d: %w", n.ID, err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) > 0 && len(notes) != len(unique(ids)) {
		return notes, fmt.Errorf("%w: requested %d, found %d", ErrNoteNotFound, len(unique(ids)), len(notes))
	}
	return notes, nil
}

func (s *Store) AddNote(ctx context.Context, fields []domain.Field) (int64, error) {
	if fields == nil {
		fields = []domain.Field{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("encode fields: %w", err)
	}
	var id int64
	q := `INSERT INTO notes (fields) VALUES (` + s.d.placeholder(1) + `) RETURNING id`
	if err := s.db.QueryRowContext(ctx, q, string(raw)).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	s.log.Debug("note added", slog.Int64("id", id), slog.Int("fields", len(fields)))
	return id, nil
}

// FieldNames loads the notes with ids and returns the union of their field names.
func FieldNames(ctx context.Context, p Provider, ids []int64) ([]string, error) {
	notes, err := p.Notes(ctx, ids)
	if err != nil {
		return nil, err
	}
	return domain.FieldNames(notes), nil
}

func unique(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
