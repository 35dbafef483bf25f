/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package widgets holds the headless controls the settings dialogs are made
// of. They carry state and invariants only; rendering belongs to internal/ui.
package widgets

// Widget is anything a dialog layout can hold.
type Widget interface {
	Title() string
}

// Checkbox is a labelled boolean toggle.
type Checkbox struct {
	title     string
	checked   bool
	listeners []func(bool)
}

func NewCheckbox(title string) *Checkbox { return &Checkbox{title: title} }

func (c *Checkbox) Title() string { return c.title }
func (c *Checkbox) IsChecked() bool { return c.checked }

func (c *Checkbox) SetChecked(v bool) {
	if c.checked == v {
		return
	}
	c.checked = v
	for _, fn := range c.listeners {
		fn(v)
	}
}

// OnChanged registers fn to run after every state change.
func (c *Checkbox) OnChanged(fn func(bool)) { c.listeners = append(c.listeners, fn) }

// Option is an entry of a closed enumeration shown in a Choice.
type Option interface {
	comparable
	Label() string
}

// Selector is the type-erased view of a Choice used by renderers.
type Selector interface {
	Widget
	Labels() []string
	Index() int
	SetIndex(i int)
}

// Choice selects exactly one of a fixed list of options.
type Choice[T Option] struct {
	title   string
	options []T
	index   int
}

func NewChoice[T Option](title string, options []T) *Choice[T] {
	return &Choice[T]{title: title, options: append([]T(nil), options...)}
}

func (c *Choice[T]) Title() string { return c.title }
func (c *Choice[T]) Options() []T { return append([]T(nil), c.options...) }
func (c *Choice[T]) Index() int { return c.index }

func (c *Choice[T]) Labels() []string {
	out := make([]string, len(c.options))
	for i, o := range c.options {
		out[i] = o.Label()
	}
	return out
}

// Selected returns the current option, or the zero value for an empty choice.
func (c *Choice[T]) Selected() T {
	var zero T
	if len(c.options) == 0 {
		return zero
	}
	return c.options[c.index]
}

// SetIndex selects the option at i; out-of-range indexes are ignored.
func (c *Choice[T]) SetIndex(i int) {
	if i < 0 || i >= len(c.options) {
		return
	}
	c.index = i
}

// Select selects v and reports whether it is one of the options.
func (c *Choice[T]) Select(v T) bool {
	for i, o := range c.options {
		if o == v {
			c.index = i
			return true
		}
	}
	return false
}

// Button runs its click handler when pressed.
type Button struct {
	title   string
	onClick func()
}

func NewButton(title string, onClick func()) *Button { return &Button{title: title, onClick: onClick} }

func (b *Button) Title() string { return b.title }

func (b *Button) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

// ButtonGrid lays buttons out row-major over a fixed number of columns.
type ButtonGrid struct {
	title   string
	columns int
	buttons []*Button
}

func NewButtonGrid(title string, columns int, buttons ...*Button) *ButtonGrid {
	if columns < 1 {
		columns = 1
	}
	return &ButtonGrid{title: title, columns: columns, buttons: buttons}
}

func (g *ButtonGrid) Title() string { return g.title }
func (g *ButtonGrid) Columns() int { return g.columns }
func (g *ButtonGrid) Buttons() []*Button { return append([]*Button(nil), g.buttons...) }
func (g *ButtonGrid) Rows() int { return (len(g.buttons) + g.columns - 1) / g.columns }
func (g *ButtonGrid) Cell(i int) (row, col int) { return i / g.columns, i % g.columns }

// Group is a titled box of widgets.
type Group struct {
	title string
	items []Widget
}

func NewGroup(title string, items ...Widget) *Group { return &Group{title: title, items: items} }

func (g *Group) Title() string { return g.title }
func (g *Group) Items() []Widget { return append([]Widget(nil), g.items...) }
func (g *Group) Add(items ...Widget) { g.items = append(g.items, items...) }
