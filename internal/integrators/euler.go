package integrators

// Euler is the explicit first-order method. Cheap and inaccurate; kept as a
// fallback for quick preview runs.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f Derivative, state []float64, t, dt float64) []float64 {
	dx := f(t, state)
	result := make([]float64, len(state))
	for i := range state {
		result[i] = state[i] + dt*dx[i]
	}
	return result
}
