package integrators

// RK4 is the classic explicit fourth-order Runge-Kutta method. The k buffers
// are reused between steps to keep per-step allocation down for large
// systems.
type RK4 struct {
	scratch []float64
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.scratch = make([]float64, n)
	}
}

func (r *RK4) Step(f Derivative, state []float64, t, dt float64) []float64 {
	n := len(state)
	r.ensureScratch(n)

	k1 := f(t, state)

	for i := 0; i < n; i++ {
		r.scratch[i] = state[i] + dt*0.5*k1[i]
	}
	k2 := f(t+dt*0.5, r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = state[i] + dt*0.5*k2[i]
	}
	k3 := f(t+dt*0.5, r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = state[i] + dt*k3[i]
	}
	k4 := f(t+dt, r.scratch)

	result := make([]float64, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = state[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}
