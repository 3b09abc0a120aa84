package trainer

// #region imports
import (
	pb "github.com/augtune-dev/augtune/gen/trainer"
	"github.com/augtune-dev/augtune/internal/policy"
)

// #endregion

// #region pipeline-steps

// PipelineSteps renders a composed policy as the wire-level stage list the
// training service executes per sample.
func PipelineSteps(pol *policy.Policy) []*pb.PipelineStep {
	steps := pol.Steps()
	out := make([]*pb.PipelineStep, len(steps))
	for i, s := range steps {
		out[i] = &pb.PipelineStep{
			Name:        s.Name,
			Mode:        string(s.Mode),
			Probability: s.Probability,
			ParamsJson:  s.ParamsJSON(),
		}
	}
	return out
}

// #endregion
