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
	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

const (
	noFieldsTitle   = "Can't accept settings"
	noFieldsMessage = "No fields selected. Nothing to convert."
)

// BulkConvertEditor configures conversion of images already stored in the
// selected notes.
type BulkConvertEditor struct {
	base      *Base
	notes     []domain.Note
	fields    *widgets.FieldSelector
	reconvert *widgets.Checkbox
	notifier  Notifier
}

// NewBulkConvertEditor builds the editor for notes. n receives the message
// shown when a commit is refused; it may be nil.
func NewBulkConvertEditor(cfg config.Map, notes []domain.Note, n Notifier) (*BulkConvertEditor, error) {
	base, err := NewBase(cfg)
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = NotifierFunc(func(string, string) {})
	}
	return &BulkConvertEditor{
		base:      base,
		notes:     append([]domain.Note(nil), notes...),
		fields:    widgets.NewFieldSelector("Limit to fields"),
		reconvert: widgets.NewCheckbox("Reconvert existing WebP images"),
		notifier:  n,
	}, nil
}

func (e *BulkConvertEditor) Name() string { return "bulk_convert" }
func (e *BulkConvertEditor) Layout() *Layout { return e.base.Layout() }
func (e *BulkConvertEditor) Base() *Base { return e.base }
func (e *BulkConvertEditor) Fields() *widgets.FieldSelector { return e.fields }
func (e *BulkConvertEditor) Reconvert() *widgets.Checkbox { return e.reconvert }

func (e *BulkConvertEditor) BuildLayout() { e.base.BuildLayout() }

func (e *BulkConvertEditor) PopulateLayout() {
	e.base.PopulateLayout()
	e.base.Layout().Append(e.fields, e.reconvert)
}

func (e *BulkConvertEditor) WireInteractions() { e.base.WireInteractions(e.Commit) }

// LoadInitialValues offers the field names found in the notes and restores
// the saved selection and the reconvert flag.
func (e *BulkConvertEditor) LoadInitialValues() error {
	saved, err := e.base.Config().Strings(config.KeyBulkConvertFields)
	if err != nil {
		return err
	}
	reconvert, err := e.base.Config().Bool(config.KeyBulkReconvertWebP)
	if err != nil {
		return err
	}
	if err := e.base.LoadInitialValues(); err != nil {
		return err
	}
	e.fields.AddFields(domain.FieldNames(e.notes))
	e.fields.SetFields(saved)
	e.reconvert.SetChecked(reconvert)
	return nil
}

// Commit refuses to accept a restriction without fields. In that case the
// user is notified once and the configuration is not touched.
func (e *BulkConvertEditor) Commit() (config.Map, error) {
	selected := e.fields.SelectedFields()
	if e.fields.IsChecked() && len(selected) == 0 {
		e.notifier.Notify(noFieldsTitle, noFieldsMessage)
		return nil, &ValidationError{Title: noFieldsTitle, Message: noFieldsMessage, Err: ErrNoFieldsSelected}
	}
	if !e.fields.IsChecked() {
		selected = nil
	}
	return e.base.Commit(config.Map{
		config.KeyBulkConvertFields: config.EncodeStrings(selected),
		config.KeyBulkReconvertWebP: e.reconvert.IsChecked(),
	})
}

// SelectedNotes returns the IDs of the notes the conversion applies to.
func (e *BulkConvertEditor) SelectedNotes() []int64 {
	ids := make([]int64, 0, len(e.notes))
	for _, n := range e.notes {
		ids = append(ids, n.ID)
	}
	return ids
}

// SelectedFields returns the fields conversion is limited to, or nil when
// every field is converted.
func (e *BulkConvertEditor) SelectedFields() []string {
	if !e.fields.IsChecked() {
		return nil
	}
	return e.fields.SelectedFields()
}
