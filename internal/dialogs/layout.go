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
	"errors"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

// ErrNotWired is returned by an action bar whose confirm handler was never connected.
var ErrNotWired = errors.New("dialog actions not wired")

// Action identifies a button of the action bar.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionConfirm:
		return "ok"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// ActionBar holds the confirm and cancel handlers of a dialog.
type ActionBar struct {
	onConfirm func() (config.Map, error)
	onCancel  func()
}

func (b *ActionBar) OnConfirm(fn func() (config.Map, error)) { b.onConfirm = fn }
func (b *ActionBar) OnCancel(fn func()) { b.onCancel = fn }

// Wired reports whether both handlers are connected.
func (b *ActionBar) Wired() bool { return b.onConfirm != nil && b.onCancel != nil }

// Confirm runs the confirm handler.
func (b *ActionBar) Confirm() (config.Map, error) {
	if b.onConfirm == nil {
		return nil, ErrNotWired
	}
	return b.onConfirm()
}

// Cancel runs the cancel handler, if any.
func (b *ActionBar) Cancel() {
	if b.onCancel != nil {
		b.onCancel()
	}
}

// Layout is the dialog's content: sections top to bottom, then the action bar.
type Layout struct {
	sections []widgets.Widget
	actions  *ActionBar
	focus    Action
}

func NewLayout() *Layout { return &Layout{actions: &ActionBar{}} }

// Append adds sections below the existing ones.
func (l *Layout) Append(ws ...widgets.Widget) { l.sections = append(l.sections, ws...) }

func (l *Layout) Sections() []widgets.Widget { return append([]widgets.Widget(nil), l.sections...) }
func (l *Layout) Actions() *ActionBar { return l.actions }
func (l *Layout) Focus() Action { return l.focus }
func (l *Layout) SetFocus(a Action) { l.focus = a }
