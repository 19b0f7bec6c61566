package astroplan

import "time"

// TargetObservability is one row of an ObservabilityTable.
type TargetObservability struct {
	TargetName         string
	EverObservable     bool
	AlwaysObservable   bool
	FractionObservable float64 // count(observable)/num_times in [0, 1]
}

// ObservabilityTable summarizes per-target observability over the sampled
// times, with the evaluation inputs attached for downstream inspection.
type ObservabilityTable struct {
	Rows []TargetObservability

	// Metadata.
	Times       []time.Time
	Observer    *Observer
	Constraints []Constraint
}

// ComputeObservabilityTable evaluates the constraints and builds the
// summary table: one row per target with the ever/always flags and the
// fraction of sampled instants that pass.
func ComputeObservabilityTable(constraints []Constraint, observer *Observer, spec TimeSpec, targets ...FixedTarget) (*ObservabilityTable, error) {
	times, err := spec.materialize()
	if err != nil {
		return nil, err
	}
	m, err := applyConstraints(constraints, observer, times, targets)
	if err != nil {
		return nil, err
	}

	ever := m.anyPerTarget()
	always := m.allPerTarget()
	frac := m.fractionPerTarget()

	rows := make([]TargetObservability, len(targets))
	for i, tgt := range targets {
		rows[i] = TargetObservability{
			TargetName:         tgt.Name,
			EverObservable:     ever[i],
			AlwaysObservable:   always[i],
			FractionObservable: frac[i],
		}
	}

	return &ObservabilityTable{
		Rows:        rows,
		Times:       times,
		Observer:    observer,
		Constraints: constraints,
	}, nil
}
