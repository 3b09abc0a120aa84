package augserver

import (
	"context"
	"testing"

	pb "github.com/augtune-dev/augtune/gen/trainer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func testBatch(count, h, w int) *pb.ImageBatch {
	pixels := make([]byte, count*h*w*3)
	for i := range pixels {
		pixels[i] = byte(i % 251)
	}
	return &pb.ImageBatch{
		Count:    int32(count),
		Height:   int32(h),
		Width:    int32(w),
		Channels: 3,
		Pixels:   pixels,
	}
}

func TestApplyPolicy_TrainShapes(t *testing.T) {
	srv := New()
	resp, err := srv.ApplyPolicy(context.Background(), &pb.ApplyPolicyRequest{
		Level: 12,
		Mode:  "train",
		Seed:  7,
		Batch: testBatch(4, 32, 32),
	})
	if err != nil {
		t.Fatal(err)
	}

	out := resp.GetTensors()
	if out.GetCount() != 4 || out.GetChannels() != 3 || out.GetHeight() != 32 || out.GetWidth() != 32 {
		t.Fatalf("tensor shape = %dx%dx%dx%d", out.GetCount(), out.GetChannels(), out.GetHeight(), out.GetWidth())
	}
	if len(out.GetValues()) != 4*3*32*32 {
		t.Fatalf("got %d values, want %d", len(out.GetValues()), 4*3*32*32)
	}
}

func TestApplyPolicy_SeedDeterminism(t *testing.T) {
	srv := New()
	req := func() *pb.ApplyPolicyRequest {
		return &pb.ApplyPolicyRequest{Level: 20, Mode: "train", Seed: 99, Batch: testBatch(2, 32, 32)}
	}
	a, err := srv.ApplyPolicy(context.Background(), req())
	if err != nil {
		t.Fatal(err)
	}
	b, err := srv.ApplyPolicy(context.Background(), req())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.GetTensors().GetValues() {
		if a.GetTensors().GetValues()[i] != b.GetTensors().GetValues()[i] {
			t.Fatal("same seed must produce identical tensors")
		}
	}
}

func TestApplyPolicy_EvalIsPureNormalization(t *testing.T) {
	srv := New()
	// Different seeds, identical output: eval mode has no random stages.
	a, err := srv.ApplyPolicy(context.Background(), &pb.ApplyPolicyRequest{
		Level: 30, Mode: "all", Seed: 1, Batch: testBatch(1, 32, 32),
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := srv.ApplyPolicy(context.Background(), &pb.ApplyPolicyRequest{
		Level: 30, Mode: "all", Seed: 2, Batch: testBatch(1, 32, 32),
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.GetTensors().GetValues() {
		if a.GetTensors().GetValues()[i] != b.GetTensors().GetValues()[i] {
			t.Fatal("eval-mode output must not depend on the seed")
		}
	}
}

func TestApplyPolicy_Validation(t *testing.T) {
	srv := New()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *pb.ApplyPolicyRequest
	}{
		{"missing batch", &pb.ApplyPolicyRequest{Level: 5}},
		{"wrong channels", &pb.ApplyPolicyRequest{Level: 5, Batch: &pb.ImageBatch{Count: 1, Height: 32, Width: 32, Channels: 1, Pixels: make([]byte, 32*32)}}},
		{"short buffer", &pb.ApplyPolicyRequest{Level: 5, Batch: &pb.ImageBatch{Count: 2, Height: 32, Width: 32, Channels: 3, Pixels: make([]byte, 32*32*3)}}},
		{"bad level", &pb.ApplyPolicyRequest{Level: 99, Batch: testBatch(1, 32, 32)}},
	}
	for _, tc := range cases {
		_, err := srv.ApplyPolicy(ctx, tc.req)
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("%s: code = %v, want InvalidArgument", tc.name, status.Code(err))
		}
	}
}

func TestDescribePolicy(t *testing.T) {
	srv := New()
	resp, err := srv.DescribePolicy(context.Background(), &pb.DescribePolicyRequest{Level: 15})
	if err != nil {
		t.Fatal(err)
	}
	steps := resp.GetSteps()
	if len(steps) != 19 {
		t.Fatalf("got %d steps, want 19", len(steps))
	}
	if steps[0].GetName() != "pad" {
		t.Errorf("first step = %q, want pad", steps[0].GetName())
	}
	if steps[16].GetName() != "normalize" || steps[16].GetMode() != "all" {
		t.Errorf("step 16 = %q (%s), want normalize (all)", steps[16].GetName(), steps[16].GetMode())
	}

	if _, err := srv.DescribePolicy(context.Background(), &pb.DescribePolicyRequest{Level: -2}); status.Code(err) != codes.InvalidArgument {
		t.Error("negative level must be rejected")
	}
}
