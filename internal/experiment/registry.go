package experiment

import (
	"fmt"
	"sort"

	"github.com/skalyan/odekit/internal/models"
	"github.com/skalyan/odekit/internal/ode"
	"github.com/skalyan/odekit/internal/tableau"
)

type Registry struct {
	models  map[string]func() ode.System
	methods map[string]func() tableau.Tableau
}

func NewRegistry() *Registry {
	r := &Registry{
		models:  make(map[string]func() ode.System),
		methods: make(map[string]func() tableau.Tableau),
	}

	r.models["freefall"] = func() ode.System { return models.NewFreeFall() }
	r.models["decay"] = func() ode.System { return models.NewDecay() }
	r.models["oscillator"] = func() ode.System { return models.NewOscillator() }
	r.models["logistic"] = func() ode.System { return models.NewLogistic() }

	r.methods["euler"] = tableau.Euler
	r.methods["midpoint"] = tableau.Midpoint
	r.methods["heun"] = tableau.Heun
	r.methods["ralston"] = tableau.Ralston
	r.methods["rk4"] = tableau.RK4

	return r
}

func (r *Registry) GetModel(name string) (ode.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetMethod(name string) (tableau.Tableau, error) {
	fn, ok := r.methods[name]
	if !ok {
		return tableau.Tableau{}, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
