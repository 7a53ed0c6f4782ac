package domain

// Model identifies one of the six ensemble simulators.
type Model string

const (
	ModelMonteCarlo Model = "MONTE_CARLO"
	ModelScenario   Model = "SCENARIO"
	ModelStress     Model = "STRESS_TEST"
	ModelBootstrap  Model = "BOOTSTRAP"
	ModelGARCH      Model = "GARCH"
	ModelBayesian   Model = "BAYESIAN"
)

// AllModels lists the six models in canonical order.
// Order matters for deterministic seeding and stable report output.
var AllModels = []Model{
	ModelMonteCarlo,
	ModelScenario,
	ModelStress,
	ModelBootstrap,
	ModelGARCH,
	ModelBayesian,
}

// String returns the string representation of Model.
func (m Model) String() string {
	return string(m)
}

// IsValid checks if the model is a known value.
func (m Model) IsValid() bool {
	for _, known := range AllModels {
		if m == known {
			return true
		}
	}
	return false
}
