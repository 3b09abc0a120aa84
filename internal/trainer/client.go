// Package trainer wraps the gRPC connection to the Python training service.
// One Evaluate call is one full training run at a given augmentation level;
// the returned score is the best held-out accuracy across all epochs.
package trainer

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/augtune-dev/augtune/gen/trainer"
	"github.com/augtune-dev/augtune/internal/policy"
	"github.com/augtune-dev/augtune/internal/search"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion

// #region defaults

const (
	DefaultEpochs    = 200
	DefaultBatchSize = 128
)

// #endregion

// #region types

// EvaluationRequest fully describes one objective evaluation. A fresh value
// is built per call; nothing is shared between evaluations.
type EvaluationRequest struct {
	Level     int
	Epochs    int
	BatchSize int
	SaveDir   string
	RunID     string
}

func (r EvaluationRequest) withDefaults() EvaluationRequest {
	if r.Epochs <= 0 {
		r.Epochs = DefaultEpochs
	}
	if r.BatchSize <= 0 {
		r.BatchSize = DefaultBatchSize
	}
	return r
}

// Evaluation is the outcome of one completed training run.
type Evaluation struct {
	Level          int
	BestAccuracy   float64
	BestEpoch      int
	CheckpointPath string
}

// #endregion

// #region client

// Client wraps the gRPC connection to the training service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TrainerClient
}

// NewClient connects to the training gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewTrainerClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.TrainerClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion

// #region evaluate

// Evaluate runs one full training at req.Level and returns the best held-out
// accuracy observed across all epochs. Failures surface immediately; there
// is no retry, since a partial training run cannot be resumed.
func (c *Client) Evaluate(ctx context.Context, req EvaluationRequest) (Evaluation, error) {
	req = req.withDefaults()
	pol, err := policy.Build(req.Level)
	if err != nil {
		return Evaluation{}, err
	}
	fmt.Printf("trying level %d\n", req.Level)
	resp, err := c.client.Fit(ctx, &pb.FitRequest{
		Level:     int32(req.Level),
		Epochs:    int32(req.Epochs),
		BatchSize: int32(req.BatchSize),
		SaveDir:   req.SaveDir,
		RunId:     req.RunID,
		Steps:     PipelineSteps(pol),
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("fit level %d: %w", req.Level, err)
	}

	// The service reports the accuracy of the saved best model; the epoch
	// history can carry a higher transient peak, and the search scores on
	// the best value ever observed.
	best := resp.GetBestAccuracy()
	for _, m := range resp.GetHistory() {
		if m.GetSplit() == "eval" && m.GetMetric() == "accuracy" && m.GetValue() > best {
			best = m.GetValue()
		}
	}
	fmt.Printf("Evaluated level %d, results:%v\n", req.Level, best)
	return Evaluation{
		Level:          req.Level,
		BestAccuracy:   best,
		BestEpoch:      int(resp.GetBestEpoch()),
		CheckpointPath: resp.GetCheckpointPath(),
	}, nil
}

// #endregion

// #region objective

// Objective adapts the client into a search objective. The request template
// supplies everything but the level; onResult, when non-nil, observes each
// completed evaluation (for provenance recording).
func (c *Client) Objective(template EvaluationRequest, onResult func(Evaluation)) search.Objective {
	return func(ctx context.Context, level int) (float64, error) {
		req := template
		req.Level = level
		ev, err := c.Evaluate(ctx, req)
		if err != nil {
			return 0, err
		}
		if onResult != nil {
			onResult(ev)
		}
		return ev.BestAccuracy, nil
	}
}

// #endregion
