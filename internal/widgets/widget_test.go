/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package widgets

import (
	"reflect"
	"testing"
)

type flavour int

func (f flavour) Label() string { return [...]string{"plain", "spicy", "sweet"}[f] }

func TestChoiceSelection(t *testing.T) {
	c := NewChoice("Flavour", []flavour{0, 1, 2})
	if c.Selected() != 0 {
		t.Fatalf("default selection = %v", c.Selected())
	}
	if !c.Select(2) || c.Index() != 2 {
		t.Fatalf("Select(2) failed, index=%d", c.Index())
	}
	if c.Select(7) {
		t.Fatalf("Select of foreign option must fail")
	}
	c.SetIndex(5)
	if c.Index() != 2 {
		t.Fatalf("out-of-range SetIndex changed selection")
	}
	var sel Selector = c
	sel.SetIndex(1)
	if c.Selected() != 1 || !reflect.DeepEqual(sel.Labels(), []string{"plain", "spicy", "sweet"}) {
		t.Fatalf("Selector view mismatch: %v %v", c.Selected(), sel.Labels())
	}
	var empty Choice[flavour]
	if empty.Selected() != 0 {
		t.Fatalf("empty choice must yield zero value")
	}
}

func TestButtonGridRowMajor(t *testing.T) {
	var clicked []int
	var buttons []*Button
	for i := 0; i < 7; i++ {
		i := i
		buttons = append(buttons, NewButton("b", func() { clicked = append(clicked, i) }))
	}
	g := NewButtonGrid("grid", 3, buttons...)
	if g.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", g.Rows())
	}
	for i, want := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}} {
		if r, c := g.Cell(i); r != want[0] || c != want[1] {
			t.Fatalf("Cell(%d) = (%d,%d), want %v", i, r, c, want)
		}
	}
	g.Buttons()[4].Click()
	if !reflect.DeepEqual(clicked, []int{4}) {
		t.Fatalf("clicked = %v", clicked)
	}
	NewButton("noop", nil).Click()
}

func TestCheckboxAndGroup(t *testing.T) {
	cb := NewCheckbox("Avoid upscaling")
	var seen []bool
	cb.OnChanged(func(v bool) { seen = append(seen, v) })
	cb.SetChecked(true)
	cb.SetChecked(true)
	cb.SetChecked(false)
	if !reflect.DeepEqual(seen, []bool{true, false}) {
		t.Fatalf("checkbox notifications = %v", seen)
	}
	g := NewGroup("Behavior", cb)
	g.Add(NewCheckbox("Copy paste"))
	if items := g.Items(); len(items) != 2 || items[1].Title() != "Copy paste" {
		t.Fatalf("group items = %v", items)
	}
}
