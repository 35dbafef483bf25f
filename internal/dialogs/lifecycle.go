/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package dialogs implements the settings dialog lifecycle and its three
// editors: global settings, paste and bulk convert.
//
// A Session drives an Editor through BuildLayout, PopulateLayout,
// WireInteractions and LoadInitialValues exactly once, in that order. After
// that the dialog is interactive until the user accepts (Commit) or rejects.
// Only a successful accept writes to the configuration map.
package dialogs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
)

// AddonName is the window title of every settings dialog.
const AddonName = "Paste Images As WebP"

// Editor is one settings dialog. Implementations compose Base and call it
// before adding their own content, so base sections always come first.
type Editor interface {
	Name() string
	BuildLayout()
	PopulateLayout()
	WireInteractions()
	LoadInitialValues() error
	Commit() (config.Map, error)
	Layout() *Layout
}

// State is a step of the dialog lifecycle.
type State int

const (
	StateConstructed State = iota
	StateBuilt
	StatePopulated
	StateWired
	StateLoaded
	StateInteractive
	StateCommitted
	StateCancelled
)

var stateNames = [...]string{"constructed", "built", "populated", "wired", "loaded", "interactive", "committed", "cancelled"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == StateCommitted || s == StateCancelled }

// Session is one invocation of an Editor. It is not safe for concurrent use;
// all calls happen on the UI thread.
type Session struct {
	editor   Editor
	state    State
	onCommit func(config.Map) error
	log      *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCommitHook runs fn with the updated map after a successful commit.
// Callers use it to persist the configuration.
func WithCommitHook(fn func(config.Map) error) Option {
	return func(s *Session) { s.onCommit = fn }
}

func NewSession(e Editor, opts ...Option) *Session {
	s := &Session{
		editor: e,
		log:    applog.WithComponent("dialogs").With(slog.String("editor", e.Name())),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open builds a session and runs it up to the interactive state.
func Open(e Editor, opts ...Option) (*Session, error) {
	s := NewSession(e, opts...)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Editor() Editor { return s.editor }
func (s *Session) State() State { return s.state }

func (s *Session) advance(to State) {
	s.log.Debug("lifecycle", slog.String("from", s.state.String()), slog.String("to", to.String()))
	s.state = to
}

// Open runs the four setup phases. A LoadInitialValues failure means the
// configuration defaults contract is broken; the session stops short of
// interactive and the error is returned.
func (s *Session) Open() error {
	if s.state != StateConstructed {
		return fmt.Errorf("open from %s: %w", s.state, ErrInvalidState)
	}
	s.editor.BuildLayout()
	s.advance(StateBuilt)
	s.editor.PopulateLayout()
	s.advance(StatePopulated)
	s.editor.WireInteractions()
	s.advance(StateWired)
	if err := s.editor.LoadInitialValues(); err != nil {
		s.log.Error("load initial values failed", slog.Any("err", err))
		return fmt.Errorf("load %s dialog: %w", s.editor.Name(), err)
	}
	s.advance(StateLoaded)
	s.advance(StateInteractive)
	return nil
}

// Accept presses the confirm action. On a validation failure the session
// stays interactive and the error is returned. On success the session is
// committed, the commit hook runs and the updated map is returned.
func (s *Session) Accept() (config.Map, error) {
	if s.state != StateInteractive {
		return nil, fmt.Errorf("accept in %s: %w", s.state, ErrInvalidState)
	}
	cfg, err := s.editor.Layout().Actions().Confirm()
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			s.log.Info("commit rejected", slog.String("reason", ve.Message))
		} else {
			s.log.Error("commit failed", slog.Any("err", err))
		}
		return nil, err
	}
	s.advance(StateCommitted)
	s.log.Info("settings committed")
	if s.onCommit != nil {
		if err := s.onCommit(cfg); err != nil {
			return cfg, fmt.Errorf("persist settings: %w", err)
		}
	}
	return cfg, nil
}

// Reject presses the cancel action and discards all control state.
func (s *Session) Reject() error {
	if s.state.Terminal() {
		return fmt.Errorf("reject in %s: %w", s.state, ErrInvalidState)
	}
	if s.state >= StateWired {
		s.editor.Layout().Actions().Cancel()
	}
	s.advance(StateCancelled)
	return nil
}
