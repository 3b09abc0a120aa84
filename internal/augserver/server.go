// Package augserver exposes the composed augmentation policy over gRPC so
// the training service's data pipeline can delegate per-sample transforms
// back to the controller's implementation.
package augserver

// #region imports
import (
	"context"
	"log"
	"math/rand"
	"time"

	pb "github.com/augtune-dev/augtune/gen/trainer"
	"github.com/augtune-dev/augtune/internal/augment"
	"github.com/augtune-dev/augtune/internal/policy"
	"github.com/augtune-dev/augtune/internal/trainer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #endregion

// #region server

// Server implements the Augmenter gRPC service.
type Server struct {
	pb.UnimplementedAugmenterServer
}

func New() *Server {
	return &Server{}
}

// #endregion

// #region apply-policy

// ApplyPolicy runs the full pipeline on every image in the batch and returns
// the stacked CHW tensors. A zero seed means non-deterministic output.
func (s *Server) ApplyPolicy(ctx context.Context, req *pb.ApplyPolicyRequest) (*pb.ApplyPolicyResponse, error) {
	batch := req.GetBatch()
	if batch == nil {
		return nil, status.Error(codes.InvalidArgument, "missing batch")
	}
	if batch.GetChannels() != 3 {
		return nil, status.Errorf(codes.InvalidArgument, "want 3 channels, got %d", batch.GetChannels())
	}
	count := int(batch.GetCount())
	h := int(batch.GetHeight())
	w := int(batch.GetWidth())
	if count <= 0 || h <= 0 || w <= 0 {
		return nil, status.Error(codes.InvalidArgument, "empty batch")
	}
	if len(batch.GetPixels()) != count*h*w*3 {
		return nil, status.Errorf(codes.InvalidArgument,
			"pixel buffer holds %d bytes, want %d", len(batch.GetPixels()), count*h*w*3)
	}

	pol, err := policy.Build(int(req.GetLevel()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	mode := augment.Mode(req.GetMode())
	if mode == "" {
		mode = augment.ModeTrain
	}
	seed := int64(req.GetSeed())
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	outH, outW := h, w
	if mode == augment.ModeTrain {
		outH, outW = policy.InputSize, policy.InputSize
	}
	values := make([]float32, 0, count*3*outH*outW)
	sample := h * w * 3
	for i := 0; i < count; i++ {
		img := augment.FromRGB(batch.GetPixels()[i*sample:(i+1)*sample], w, h)
		tensor, err := pol.Apply(img, mode, rng)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if tensor.H != outH || tensor.W != outW {
			return nil, status.Errorf(codes.Internal,
				"sample %d produced %dx%d tensor, want %dx%d", i, tensor.H, tensor.W, outH, outW)
		}
		values = append(values, tensor.Data...)
	}

	log.Printf("[AUG] applied level %d policy to %d samples (%s)", req.GetLevel(), count, mode)
	return &pb.ApplyPolicyResponse{
		Tensors: &pb.TensorBatch{
			Count:    int32(count),
			Channels: 3,
			Height:   int32(outH),
			Width:    int32(outW),
			Values:   values,
		},
	}, nil
}

// #endregion

// #region describe-policy

// DescribePolicy returns the composed pipeline for a level without applying it.
func (s *Server) DescribePolicy(ctx context.Context, req *pb.DescribePolicyRequest) (*pb.DescribePolicyResponse, error) {
	pol, err := policy.Build(int(req.GetLevel()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.DescribePolicyResponse{Steps: trainer.PipelineSteps(pol)}, nil
}

// #endregion
