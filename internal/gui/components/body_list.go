package components

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"solarsim/internal/physics"
)

// ErrLastRow is returned when removing the compulsory first row is
// attempted.
var ErrLastRow = errors.New("the first body row cannot be removed")

// BodyList is the ordered, dynamically resizable list of body input rows.
// It always contains at least one row and keeps every row's base selector
// in sync with the rows currently present.
type BodyList struct {
	box       *fyne.Container
	rows      []*BodyRow
	nextIndex int
}

func NewBodyList() *BodyList {
	list := &BodyList{
		box: container.NewVBox(),
	}
	list.AddRow()
	return list
}

func (l *BodyList) Container() fyne.CanvasObject {
	return l.box
}

// Rows returns the rows in display order.
func (l *BodyList) Rows() []*BodyRow {
	return l.rows
}

// AddRow appends a fresh row named Body_<n>, where n counts every row ever
// inserted, matching how the editor numbers new lines.
func (l *BodyList) AddRow() *BodyRow {
	row := NewBodyRow(l.nextIndex)
	l.nextIndex++
	l.rows = append(l.rows, row)
	l.box.Add(row.Container())
	row.name.OnChanged = func(string) {
		l.refreshRelativeTargets()
	}
	l.refreshRelativeTargets()
	return row
}

// RemoveRow deletes the given row. The first remaining row is compulsory
// and cannot be removed. Rows based on the removed one fall back to
// absolute coordinates.
func (l *BodyList) RemoveRow(row *BodyRow) error {
	if len(l.rows) == 1 {
		return ErrLastRow
	}
	for i, r := range l.rows {
		if r == row {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			l.box.Remove(row.Container())
			l.refreshRelativeTargets()
			return nil
		}
	}
	return errors.New("row is not part of this list")
}

// Reset restores every row to its default state and renumbers the default
// names from zero.
func (l *BodyList) Reset() {
	for i, row := range l.rows {
		row.Reset(i)
	}
	l.nextIndex = len(l.rows)
	l.refreshRelativeTargets()
}

// dependsOn reports whether row's chain of bases passes through base.
func dependsOn(row, base *BodyRow) bool {
	for r := row.relativeTo; r != nil; r = r.relativeTo {
		if r == base {
			return true
		}
	}
	return false
}

// refreshRelativeTargets rebuilds each row's base selector from the rows
// currently in the list: everything except the row itself and any row
// already depending on it, which would close a cycle. Called on every
// structural change and on renames so the labels track the name entries.
func (l *BodyList) refreshRelativeTargets() {
	for _, row := range l.rows {
		options := []string{originLabel}
		choices := []*BodyRow{nil}
		for _, other := range l.rows {
			if other == row || dependsOn(other, row) {
				continue
			}
			options = append(options, other.Name())
			choices = append(choices, other)
		}
		row.setRelativeOptions(options, choices)
	}
}

// Extract validates every row and assembles the ordered body slice with
// relative positions resolved. The first validation failure aborts with
// ErrInvalidInputs after every row has had the chance to mark its entries.
func (l *BodyList) Extract() ([]physics.Body, error) {
	bodies := make([]physics.Body, 0, len(l.rows))
	invalid := false
	for _, row := range l.rows {
		b, err := row.Body()
		if err != nil {
			invalid = true
			continue
		}
		bodies = append(bodies, b)
	}
	if invalid {
		return nil, ErrInvalidInputs
	}
	return bodies, nil
}
