//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/jcznk/PasteImagesAsWebP/internal/dialogs"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

const (
	prefWidth  = "settings.width"
	prefHeight = "settings.height"
)

// windowNotifier shows editor messages as information dialogs on win.
type windowNotifier struct {
	win fyne.Window
}

func (n windowNotifier) Notify(title, message string) {
	dialog.ShowInformation(title, message, n.win)
}

// Run opens the editor returned by build in a window and blocks until the
// dialog is accepted or rejected.
func Run(build Builder, opts ...dialogs.Option) error {
	l := applog.WithComponent("ui")

	fyneApp := app.NewWithID("pasteimages")
	w := fyneApp.NewWindow(dialogs.AddonName)

	editor, err := build(windowNotifier{win: w})
	if err != nil {
		return err
	}
	s, err := dialogs.Open(editor, opts...)
	if err != nil {
		return err
	}

	v := newView(w, s)
	w.SetContent(v.content())
	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback(prefWidth, 520), 420)
	winH := max(prefs.IntWithFallback(prefHeight, 640), 480)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))
	v.onClose = func() {
		sz := w.Canvas().Size()
		prefs.SetInt(prefWidth, int(sz.Width))
		prefs.SetInt(prefHeight, int(sz.Height))
	}
	w.SetCloseIntercept(v.reject)
	if editor.Layout().Focus() == dialogs.ActionConfirm {
		w.Canvas().Focus(v.ok)
	}

	l.Info("showing settings", slog.String("editor", editor.Name()))
	w.ShowAndRun()
	return v.err
}

// view renders a session's layout with Fyne widgets and keeps both sides in
// sync. Control models stay the single source of truth.
type view struct {
	win     fyne.Window
	session *dialogs.Session
	log     *slog.Logger

	sliders map[*widgets.Slider]*widget.Slider
	checks  map[*widgets.Checkbox]*widget.Check
	selects map[string]*widget.Select
	fields  *widget.CheckGroup
	presets *widget.List
	scale   []*widget.Button
	ok      *widget.Button
	cancel  *widget.Button

	onClose func()
	err     error
}

func newView(w fyne.Window, s *dialogs.Session) *view {
	return &view{
		win:     w,
		session: s,
		log:     applog.WithComponent("ui").With(slog.String("editor", s.Editor().Name())),
		sliders: make(map[*widgets.Slider]*widget.Slider),
		checks:  make(map[*widgets.Checkbox]*widget.Check),
		selects: make(map[string]*widget.Select),
	}
}

func (v *view) content() fyne.CanvasObject {
	sections := v.session.Editor().Layout().Sections()
	items := make([]fyne.CanvasObject, 0, len(sections))
	for _, sec := range sections {
		items = append(items, v.render(sec))
	}
	v.ok = widget.NewButton("OK", v.accept)
	v.ok.Importance = widget.HighImportance
	v.cancel = widget.NewButton("Cancel", v.reject)
	bar := container.NewHBox(layout.NewSpacer(), v.cancel, v.ok)
	return container.NewBorder(nil, bar, nil, nil, container.NewVScroll(container.NewVBox(items...)))
}

func (v *view) render(w widgets.Widget) fyne.CanvasObject {
	switch x := w.(type) {
	case *widgets.ScaleParameterPanel:
		form := widget.NewForm()
		for _, s := range x.Sliders() {
			item := widget.NewFormItem(s.Title(), v.slider(s))
			item.HintText = s.Tooltip()
			form.AppendItem(item)
		}
		return widget.NewCard(x.Title(), "", form)
	case *widgets.PresetsEditor:
		return v.presetList(x)
	case *widgets.FieldSelector:
		return v.fieldSelector(x)
	case *widgets.Checkbox:
		return v.check(x)
	case *widgets.ButtonGrid:
		objs := make([]fyne.CanvasObject, 0, len(x.Buttons()))
		for _, b := range x.Buttons() {
			fb := widget.NewButton(b.Title(), b.Click)
			v.scale = append(v.scale, fb)
			objs = append(objs, fb)
		}
		return widget.NewCard(x.Title(), "", container.NewGridWithColumns(x.Columns(), objs...))
	case *widgets.Group:
		box := container.NewVBox()
		for _, it := range x.Items() {
			box.Add(v.render(it))
		}
		return widget.NewCard(x.Title(), "", box)
	case widgets.Selector:
		sel := widget.NewSelect(x.Labels(), nil)
		sel.SetSelectedIndex(x.Index())
		sel.OnChanged = func(string) { x.SetIndex(sel.SelectedIndex()) }
		v.selects[x.Title()] = sel
		return widget.NewForm(widget.NewFormItem(x.Title(), sel))
	default:
		v.log.Warn("no renderer for section", slog.String("type", fmt.Sprintf("%T", w)))
		return widget.NewLabel(w.Title())
	}
}

func (v *view) slider(m *widgets.Slider) fyne.CanvasObject {
	s := widget.NewSlider(0, float64(m.Limit()))
	s.Step = 1
	s.SetValue(float64(m.Value()))
	value := widget.NewLabel(fmt.Sprintf("%d %s", m.Value(), m.Unit()))
	s.OnChanged = func(f float64) { m.SetValue(int(math.Round(f))) }
	m.OnChanged(func(n int) {
		value.SetText(fmt.Sprintf("%d %s", n, m.Unit()))
		if int(math.Round(s.Value)) != n {
			s.SetValue(float64(n))
		}
	})
	v.sliders[m] = s
	return container.NewBorder(nil, nil, nil, value, s)
}

func (v *view) presetList(m *widgets.PresetsEditor) fyne.CanvasObject {
	selected := -1
	list := widget.NewList(
		func() int { return m.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			items := m.AsList()
			if i < 0 || int(i) >= len(items) {
				o.(*widget.Label).SetText("")
				return
			}
			p := items[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s (%d x %d, %d%%)", p.Name, p.Params.Width, p.Params.Height, p.Params.Quality))
		},
	)
	list.OnSelected = func(i widget.ListItemID) { selected = int(i) }
	list.OnUnselected = func(widget.ListItemID) { selected = -1 }
	m.OnChanged(list.Refresh)
	v.presets = list

	name := widget.NewEntry()
	name.SetPlaceHolder("Preset name")
	add := widget.NewButton("Add", func() {
		m.Add(name.Text)
		name.SetText("")
	})
	apply := widget.NewButton("Apply", func() { m.Apply(selected) })
	remove := widget.NewButton("Remove", func() {
		if m.Remove(selected) {
			list.UnselectAll()
		}
	})

	area := canvas.NewRectangle(color.Transparent)
	area.SetMinSize(fyne.NewSize(0, 120))
	controls := container.NewBorder(nil, nil, nil, container.NewHBox(add, apply, remove), name)
	return widget.NewCard(m.Title(), "", container.NewBorder(nil, controls, nil, nil, container.NewStack(area, list)))
}

func (v *view) fieldSelector(m *widgets.FieldSelector) fyne.CanvasObject {
	group := widget.NewCheckGroup(m.Available(), nil)
	group.SetSelected(m.SelectedFields())
	group.OnChanged = func(sel []string) {
		on := make(map[string]bool, len(sel))
		for _, n := range sel {
			on[n] = true
		}
		for _, n := range m.Available() {
			m.SetSelected(n, on[n])
		}
	}
	limit := widget.NewCheck(m.Title(), func(b bool) {
		m.SetChecked(b)
		if b {
			group.Enable()
		} else {
			group.Disable()
		}
	})
	limit.SetChecked(m.IsChecked())
	if !m.IsChecked() {
		group.Disable()
	}
	v.fields = group
	return container.NewVBox(limit, group)
}

func (v *view) check(m *widgets.Checkbox) fyne.CanvasObject {
	c := widget.NewCheck(m.Title(), nil)
	c.SetChecked(m.IsChecked())
	c.OnChanged = m.SetChecked
	m.OnChanged(func(b bool) {
		if c.Checked != b {
			c.SetChecked(b)
		}
	})
	v.checks[m] = c
	return c
}

func (v *view) accept() {
	_, err := v.session.Accept()
	var ve *dialogs.ValidationError
	switch {
	case errors.As(err, &ve):
		return
	case err != nil && v.session.State() != dialogs.StateCommitted:
		dialog.ShowError(err, v.win)
		return
	case err != nil:
		v.log.Error("save settings failed", slog.Any("err", err))
		v.err = err
	}
	v.close()
}

func (v *view) reject() {
	if err := v.session.Reject(); err != nil {
		v.log.Warn("reject failed", slog.Any("err", err))
	}
	v.close()
}

func (v *view) close() {
	if v.onClose != nil {
		v.onClose()
	}
	v.win.Close()
}
