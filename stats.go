package kmeansgo

import (
	"fmt"
	"time"
)

// TerminationReason describes why the fit loop stopped.
type TerminationReason int

const (
	// TerminationConverged means the stopping rule was satisfied before the cap.
	TerminationConverged TerminationReason = iota

	// TerminationMaxIterations means the iteration cap cut the loop off.
	TerminationMaxIterations
)

func (t TerminationReason) String() string {
	switch t {
	case TerminationConverged:
		return "Converged"
	case TerminationMaxIterations:
		return "MaxIterations"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Stats describes a completed fit run. Pass a pointer via WithStats to have
// Fit or FitAssign fill it in.
type Stats struct {
	// Iterations is the number of assign/update rounds that ran.
	Iterations int

	// Termination records why the loop stopped.
	Termination TerminationReason

	// Inertia is the within-cluster sum of squared distances against the
	// final centers.
	Inertia float64

	// CenterShift is the center movement the stopping rule evaluated in the
	// last iteration: the signed coordinate sum under ConvergeNetShift, the
	// summed absolute movement otherwise.
	CenterShift float64

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}
