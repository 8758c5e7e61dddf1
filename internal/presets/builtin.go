package presets

// BuiltinSolarSystem is the preset seeded into a fresh store: the Sun and
// the nine classical planets, positions in meters along the y axis and
// orbital velocities in meters per second along x.
func BuiltinSolarSystem() Preset {
	return Preset{
		Name:             "Solar system",
		StandardizedName: "solar_system",
		System: []BodyRecord{
			{Name: "sun", Mass: 2e30, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}},
			{Name: "mercury", Mass: 3.285e23, Position: [3]float64{0, 57.9e9, 0}, Velocity: [3]float64{47400, 0, 0}},
			{Name: "venus", Mass: 4.87e24, Position: [3]float64{0, 108.2e9, 0}, Velocity: [3]float64{35000, 0, 0}},
			{Name: "earth", Mass: 5.97e24, Position: [3]float64{0, 149.6e9, 0}, Velocity: [3]float64{29800, 0, 0}},
			{Name: "mars", Mass: 0.642e24, Position: [3]float64{0, 227.9e9, 0}, Velocity: [3]float64{24100, 0, 0}},
			{Name: "jupiter", Mass: 1898e24, Position: [3]float64{0, 778.6e9, 0}, Velocity: [3]float64{13100, 0, 0}},
			{Name: "saturn", Mass: 568e24, Position: [3]float64{0, 1433.5e9, 0}, Velocity: [3]float64{9700, 0, 0}},
			{Name: "uranus", Mass: 86.8e24, Position: [3]float64{0, 2872.5e9, 0}, Velocity: [3]float64{6835, 0, 0}},
			{Name: "neptune", Mass: 102e24, Position: [3]float64{0, 4495.1e9, 0}, Velocity: [3]float64{5477, 0, 0}},
			{Name: "pluto", Mass: 0.146e24, Position: [3]float64{0, 5906.4e9, 0}, Velocity: [3]float64{4748, 0, 0}},
		},
	}
}
