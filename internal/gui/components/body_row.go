package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/physics"
)

// ErrInvalidInputs is returned when at least one entry of a row fails its
// validator. The offending entries are already marked in red by Fyne.
var ErrInvalidInputs = errors.New("inputs in red are not correctly filled")

// originLabel is the selector entry meaning "no base, coordinates are
// absolute".
const originLabel = "(0,0,0)"

// BodyRow captures one body's state vector as validated text entries: name,
// three position components, three velocity components and the mass. The
// position can be declared relative to another row through the base
// selector; the base's resolved position is then added on extraction.
type BodyRow struct {
	name     *widget.Entry
	position [3]*widget.Entry
	velocity [3]*widget.Entry
	mass     *widget.Entry

	relative        *widget.Select
	relativeTo      *BodyRow
	relativeChoices []*BodyRow

	container *fyne.Container
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func isFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("not a number")
	}
	return nil
}

func isPositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("not a number")
	}
	if v <= 0 {
		return errors.New("must be strictly positive")
	}
	return nil
}

func numericEntry(placeholder string, validator fyne.StringValidator) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Validator = validator
	entry.SetText("0")
	return entry
}

func parseEntry(e *widget.Entry) float64 {
	v, _ := strconv.ParseFloat(e.Text, 64)
	return v
}

// NewBodyRow builds a row with the default name Body_<index> and all state
// components preset to zero except the mass, which starts empty so the user
// has to choose one.
func NewBodyRow(index int) *BodyRow {
	row := &BodyRow{}

	row.name = widget.NewEntry()
	row.name.Validator = notEmpty
	row.name.SetText(fmt.Sprintf("Body_%d", index))

	axes := [3]string{"x", "y", "z"}
	for i, axis := range axes {
		row.position[i] = numericEntry(axis+" [m]", isFloat)
		row.velocity[i] = numericEntry("v"+axis+" [m/s]", isFloat)
	}

	row.mass = widget.NewEntry()
	row.mass.SetPlaceHolder("mass [kg]")
	row.mass.Validator = isPositiveFloat

	row.relative = widget.NewSelect([]string{originLabel}, func(selected string) {
		for i, option := range row.relative.Options {
			if option == selected {
				row.relativeTo = row.relativeChoices[i]
				return
			}
		}
		row.relativeTo = nil
	})
	row.relativeChoices = []*BodyRow{nil}
	row.relative.Selected = originLabel

	row.container = container.NewGridWithColumns(9,
		row.name,
		row.position[0], row.position[1], row.position[2],
		row.velocity[0], row.velocity[1], row.velocity[2],
		row.mass,
		row.relative,
	)
	return row
}

func (r *BodyRow) Container() fyne.CanvasObject {
	return r.container
}

// Name returns the current name text, trimmed.
func (r *BodyRow) Name() string {
	return strings.TrimSpace(r.name.Text)
}

// RelativeTo returns the row this row's position is based on, nil when the
// coordinates are absolute.
func (r *BodyRow) RelativeTo() *BodyRow {
	return r.relativeTo
}

// setRelativeOptions replaces the base selector's choices. The current base
// keeps its selection under its (possibly renamed) label; a base that is no
// longer offered falls back to the origin.
func (r *BodyRow) setRelativeOptions(options []string, choices []*BodyRow) {
	r.relative.Options = options
	r.relativeChoices = choices

	selected := originLabel
	kept := false
	for i, choice := range choices {
		if r.relativeTo != nil && choice == r.relativeTo {
			selected = options[i]
			kept = true
		}
	}
	if !kept {
		r.relativeTo = nil
	}
	r.relative.Selected = selected
	r.relative.Refresh()
}

// absolutePosition resolves the entered position through the chain of
// relative bases. The chain is cycle-free: the selector never offers a row
// that already depends on this one.
func (r *BodyRow) absolutePosition() (physics.Vec3, error) {
	for i := 0; i < 3; i++ {
		if err := r.position[i].Validate(); err != nil {
			return physics.Vec3{}, ErrInvalidInputs
		}
	}
	local := physics.Vec3{
		X: parseEntry(r.position[0]),
		Y: parseEntry(r.position[1]),
		Z: parseEntry(r.position[2]),
	}
	if r.relativeTo == nil {
		return local, nil
	}
	base, err := r.relativeTo.absolutePosition()
	if err != nil {
		return physics.Vec3{}, err
	}
	return local.Add(base), nil
}

// Body validates every entry and assembles the body, translating the
// position by the resolved base chain. A single ErrInvalidInputs comes back
// when anything fails, including invalid entries on a base row; the failing
// entries keep their error marking.
func (r *BodyRow) Body() (physics.Body, error) {
	entries := []*widget.Entry{
		r.name,
		r.position[0], r.position[1], r.position[2],
		r.velocity[0], r.velocity[1], r.velocity[2],
		r.mass,
	}
	invalid := false
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			invalid = true
		}
	}
	if invalid {
		return physics.Body{}, ErrInvalidInputs
	}

	position, err := r.absolutePosition()
	if err != nil {
		return physics.Body{}, err
	}
	return physics.NewBody(
		r.Name(),
		parseEntry(r.mass),
		position,
		physics.Vec3{X: parseEntry(r.velocity[0]), Y: parseEntry(r.velocity[1]), Z: parseEntry(r.velocity[2])},
	)
}

// Reset clears the state entries, restores the default name for the given
// index and drops any error marking. The base selection survives, matching
// how the editor treats it as a property of the row rather than its data.
func (r *BodyRow) Reset(index int) {
	r.name.SetText(fmt.Sprintf("Body_%d", index))
	for i := 0; i < 3; i++ {
		r.position[i].SetText("0")
		r.velocity[i].SetText("0")
	}
	r.mass.SetText("")
	r.mass.SetValidationError(nil)
}
