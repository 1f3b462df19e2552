package stage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hamilton-earthscope/tinkerpop/conf"
)

// hookObserver adapts funcs to Observer for tests.
type hookObserver struct {
	beforeChain func(ctx context.Context, runID, name string, input *conf.Configuration) error
	afterChain  func(ctx context.Context, runID string, result *conf.Configuration, err error) error
	beforeStage func(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error
	afterStage  func(ctx context.Context, runID string, stageIndex int, input, output *conf.Configuration, stageErr error, d time.Duration) error
}

func (h *hookObserver) BeforeChain(ctx context.Context, runID, name string, input *conf.Configuration) error {
	if h.beforeChain != nil {
		return h.beforeChain(ctx, runID, name, input)
	}
	return nil
}

func (h *hookObserver) AfterChain(ctx context.Context, runID string, result *conf.Configuration, err error) error {
	if h.afterChain != nil {
		return h.afterChain(ctx, runID, result, err)
	}
	return nil
}

func (h *hookObserver) BeforeStage(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error {
	if h.beforeStage != nil {
		return h.beforeStage(ctx, runID, stageIndex, input)
	}
	return nil
}

func (h *hookObserver) AfterStage(ctx context.Context, runID string, stageIndex int, input, output *conf.Configuration, stageErr error, d time.Duration) error {
	if h.afterStage != nil {
		return h.afterStage(ctx, runID, stageIndex, input, output, stageErr, d)
	}
	return nil
}

func TestChain_DerivesInputBetweenStages(t *testing.T) {
	ctx := context.Background()

	// Stage 1 declares where it wrote; stage 2 must see the derived input.
	var stage2Input *conf.Configuration
	c := &Chain{
		Name: "two-hop",
		Stages: []Stage{
			SetKey(conf.KeyOutputLocation, conf.StringValue("/data/stage1")),
			func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
				stage2Input = input
				return input, nil
			},
		},
	}

	initial := conf.New()
	initial.SetInt("retries", 3)
	out, err := c.Run(ctx, initial, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stage2Input == nil {
		t.Fatal("stage 2 never ran")
	}
	if in, _ := stage2Input.GetString(conf.KeyInputLocation); in != "/data/stage1/~g" {
		t.Errorf("stage 2 input location: %q", in)
	}
	if loc, _ := stage2Input.GetString(conf.KeyOutputLocation); loc != "/data/stage1_" {
		t.Errorf("stage 2 output location: %q", loc)
	}
	// Unrelated settings ride along
	if n, _ := stage2Input.GetInt("retries"); n != 3 {
		t.Errorf("retries: got %d", n)
	}
	// The caller's configuration is untouched
	if initial.Contains(conf.KeyOutputLocation) {
		t.Error("initial configuration mutated")
	}
	if out != stage2Input {
		t.Error("Run should return the last stage's output")
	}
}

func TestChain_FirstStageGetsInputVerbatim(t *testing.T) {
	ctx := context.Background()
	initial := conf.New()
	initial.SetString(conf.KeyOutputLocation, "/data/raw")

	var seen *conf.Configuration
	c := &Chain{Stages: []Stage{
		func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
			seen = input
			return input, nil
		},
	}}
	if _, err := c.Run(ctx, initial, nil); err != nil {
		t.Fatal(err)
	}
	// No derivation before the first stage
	if seen != initial {
		t.Error("first stage should receive the caller's configuration as is")
	}
}

func TestChain_EmptyAndNilInput(t *testing.T) {
	ctx := context.Background()

	empty := &Chain{Name: "empty"}
	out, err := empty.Run(ctx, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out == nil || out.Len() != 0 {
		t.Errorf("empty chain with nil input: %v", out)
	}

	var got *conf.Configuration
	c := &Chain{Stages: []Stage{
		func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
			got = input
			return input, nil
		},
	}}
	if _, err := c.Run(ctx, nil, nil); err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Error("nil input should arrive as an empty configuration, not nil")
	}
}

func TestChain_ErrorStopsChain(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	ran := false
	c := &Chain{
		Name: "failing",
		Stages: []Stage{
			Identity(),
			func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
				return nil, boom
			},
			Tap(func(context.Context, *conf.Configuration) { ran = true }),
		},
	}
	_, err := c.Run(ctx, conf.New(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if want := "stage 1: boom"; err.Error() != want {
		t.Errorf("error text: got %q, want %q", err.Error(), want)
	}
	if ran {
		t.Error("stage after failure must not run")
	}
}

func TestChain_ObserverHookOrder(t *testing.T) {
	ctx := context.Background()
	var runIDSeen string
	var order []string
	obs := &hookObserver{
		beforeChain: func(ctx context.Context, runID, name string, input *conf.Configuration) error {
			runIDSeen = runID
			order = append(order, "BeforeChain:"+name)
			return nil
		},
		afterChain: func(ctx context.Context, runID string, result *conf.Configuration, err error) error {
			order = append(order, "AfterChain")
			return nil
		},
		beforeStage: func(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error {
			order = append(order, fmt.Sprintf("BeforeStage:%d", stageIndex))
			return nil
		},
		afterStage: func(ctx context.Context, runID string, stageIndex int, input, output *conf.Configuration, stageErr error, d time.Duration) error {
			order = append(order, fmt.Sprintf("AfterStage:%d", stageIndex))
			return nil
		},
	}

	c := &Chain{Name: "observed", Stages: []Stage{Identity(), Identity()}}
	if _, err := c.Run(ctx, conf.New(), &RunOptions{Observer: obs}); err != nil {
		t.Fatal(err)
	}
	if runIDSeen == "" {
		t.Error("expected runID to be generated")
	}
	want := []string{"BeforeChain:observed", "BeforeStage:0", "AfterStage:0", "BeforeStage:1", "AfterStage:1", "AfterChain"}
	if len(order) != len(want) {
		t.Fatalf("order: got %d hooks, want %d: %v", len(order), len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d]: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestChain_ObserverSeesDerivedInput(t *testing.T) {
	ctx := context.Background()
	var stage1Input *conf.Configuration
	obs := &hookObserver{
		beforeStage: func(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error {
			if stageIndex == 1 {
				stage1Input = input
			}
			return nil
		},
	}
	c := &Chain{Stages: []Stage{
		SetKey(conf.KeyOutputLocation, conf.StringValue("/data/a")),
		Identity(),
	}}
	if _, err := c.Run(ctx, conf.New(), &RunOptions{Observer: obs}); err != nil {
		t.Fatal(err)
	}
	if stage1Input == nil {
		t.Fatal("BeforeStage(1) not called")
	}
	if in, _ := stage1Input.GetString(conf.KeyInputLocation); in != "/data/a/~g" {
		t.Errorf("observer should see the derived input: %q", in)
	}
}

func TestChain_RunIDPropagated(t *testing.T) {
	ctx := context.Background()
	var ids []string
	obs := &hookObserver{
		beforeStage: func(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error {
			ids = append(ids, runID)
			return nil
		},
	}
	c := &Chain{Stages: []Stage{Identity(), Identity()}}
	if _, err := c.Run(ctx, conf.New(), &RunOptions{Observer: obs, RunID: "run-42"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range ids {
		if id != "run-42" {
			t.Errorf("runID: got %q", id)
		}
	}
}

func TestChain_ObserverErrorDoesNotMaskStageError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	obs := &hookObserver{
		afterStage: func(ctx context.Context, runID string, stageIndex int, input, output *conf.Configuration, stageErr error, d time.Duration) error {
			return errors.New("observer failed")
		},
	}
	c := &Chain{Stages: []Stage{
		func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
			return nil, boom
		},
	}}
	_, err := c.Run(ctx, conf.New(), &RunOptions{Observer: obs})
	if !errors.Is(err, boom) {
		t.Errorf("stage error masked: %v", err)
	}
}

func TestChain_BeforeStageErrorStopsRun(t *testing.T) {
	ctx := context.Background()
	obs := &hookObserver{
		beforeStage: func(ctx context.Context, runID string, stageIndex int, input *conf.Configuration) error {
			return errors.New("refused")
		},
	}
	ran := false
	c := &Chain{Stages: []Stage{Tap(func(context.Context, *conf.Configuration) { ran = true })}}
	_, err := c.Run(ctx, conf.New(), &RunOptions{Observer: obs})
	if err == nil {
		t.Fatal("BeforeStage error should fail the run")
	}
	if ran {
		t.Error("stage must not run after BeforeStage error")
	}
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	s := Require(conf.KeyInputLocation, conf.KeyVertexInputFormatClass)

	c := conf.New()
	c.SetString(conf.KeyInputLocation, "/data/in")
	if _, err := s(ctx, c); err == nil {
		t.Error("missing format class should fail")
	}

	c.SetClass(conf.KeyVertexInputFormatClass, "org.example.KryoVertexInputFormat")
	out, err := s(ctx, c)
	if err != nil {
		t.Fatal(err)
	}
	if out != c {
		t.Error("Require should pass the input through")
	}
}

func TestSetKey_DoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	in := conf.New()
	out, err := SetKey("k", conf.IntValue(1))(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if in.Contains("k") {
		t.Error("SetKey mutated its input")
	}
	if n, _ := out.GetInt("k"); n != 1 {
		t.Errorf("k: got %d", n)
	}
}

func TestWithTimeout(t *testing.T) {
	ctx := context.Background()
	slow := func(ctx context.Context, input *conf.Configuration) (*conf.Configuration, error) {
		select {
		case <-time.After(time.Second):
			return input, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	_, err := WithTimeout(slow, 10*time.Millisecond)(ctx, conf.New())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("want deadline exceeded, got %v", err)
	}
}
