// Package simulate implements the six stochastic path simulators of the
// valuation ensemble. Every simulator is a pure function of
// (AssetProfile, SimulationConfig, randvar.Source) -> PathSet: no shared
// mutable state, no I/O inside the simulation loop, bit-identical output
// for a fixed seed.
package simulate

import (
	"errors"
	"fmt"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// Simulator runs one model for the configured path count and horizon.
type Simulator func(*domain.AssetProfile, *domain.SimulationConfig, *randvar.Source) (domain.PathSet, error)

// ErrUnknownModel is returned for a model with no registered simulator.
var ErrUnknownModel = errors.New("unknown simulation model")

// Simulators maps each model to its implementation.
var Simulators = map[domain.Model]Simulator{
	domain.ModelMonteCarlo: MonteCarlo,
	domain.ModelScenario:   Scenario,
	domain.ModelStress:     Stress,
	domain.ModelBootstrap:  Bootstrap,
	domain.ModelGARCH:      GARCH,
	domain.ModelBayesian:   Bayesian,
}

// Run validates the input and executes one model.
// Validation failures surface before any path is simulated.
func Run(model domain.Model, asset *domain.AssetProfile, cfg *domain.SimulationConfig, src *randvar.Source) (domain.PathSet, error) {
	sim, ok := Simulators[model]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	return sim(asset, cfg, src)
}
