// Package presets persists named system configurations as JSON under the
// per-user application data directory.
package presets

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"solarsim/internal/physics"
)

// Extension is the file extension of preset files, both the store itself and
// anything imported or exported.
const Extension = ".solar.json"

// StoreFileName is the name of the store file inside the data directory.
const StoreFileName = "presets" + Extension

// BodyRecord is the serialized form of one body.
type BodyRecord struct {
	Name     string     `json:"name" validate:"required"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Mass     float64    `json:"mass" validate:"gt=0"`
}

// Preset is a named, persisted system. StandardizedName is the uniqueness
// key within a store.
type Preset struct {
	Name             string       `json:"name" validate:"required"`
	StandardizedName string       `json:"standardized_name" validate:"required"`
	System           []BodyRecord `json:"system" validate:"min=1,dive"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// StandardizeName lowercases, trims and replaces inner spaces by
// underscores: " I am a name " becomes "i_am_a_name".
func StandardizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Bodies converts the serialized system into physics bodies, re-checking the
// body invariants on the way in.
func (p Preset) Bodies() ([]physics.Body, error) {
	bodies := make([]physics.Body, 0, len(p.System))
	for _, r := range p.System {
		b, err := physics.NewBody(r.Name, r.Mass,
			physics.Vec3{X: r.Position[0], Y: r.Position[1], Z: r.Position[2]},
			physics.Vec3{X: r.Velocity[0], Y: r.Velocity[1], Z: r.Velocity[2]})
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// NewPreset builds a preset from live bodies under a display name.
func NewPreset(name string, bodies []physics.Body) Preset {
	records := make([]BodyRecord, len(bodies))
	for i, b := range bodies {
		records[i] = BodyRecord{
			Name:     b.Name,
			Position: [3]float64{b.Position.X, b.Position.Y, b.Position.Z},
			Velocity: [3]float64{b.Velocity.X, b.Velocity.Y, b.Velocity.Z},
			Mass:     b.Mass,
		}
	}
	return Preset{
		Name:             name,
		StandardizedName: StandardizeName(name),
		System:           records,
	}
}
