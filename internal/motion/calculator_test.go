package motion

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/motioncalc/internal/domain"
	"github.com/bft-labs/motioncalc/pkg/log"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f (±%g)", name, got, want, tol)
	}
}

func TestCalculator_Compute_DefaultScenario(t *testing.T) {
	c := NewCalculator()

	res, err := c.Compute(context.Background(), validState())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	approx(t, "velocity km/h", res.Velocity.Kmh(), 48880, 1e-6)
	approx(t, "velocity m/s", float64(res.Velocity), 13577.7778, 1e-4)
	approx(t, "distance km", res.Distance.Km(), 10000, 1e-6)
	approx(t, "remaining fuel", float64(res.RemainingFuel), 3200, 1e-9)
	approx(t, "omitted distance", float64(res.OmittedDistance), 0.5*3*3600*3600, 1e-6)
}

func TestCalculator_Compute_InsufficientFuel(t *testing.T) {
	c := NewCalculator()
	s := validState()
	s.Fuel = 100
	s.FuelBurnRate = 1
	s.Time = 200

	res, err := c.Compute(context.Background(), s)
	if !errors.Is(err, domain.ErrInsufficientFuel) {
		t.Fatalf("Compute() error = %v, want ErrInsufficientFuel", err)
	}
	if res != (domain.Result{}) {
		t.Errorf("Compute() result = %+v, want zero value", res)
	}
}

func TestCalculator_Compute_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCalculator().Compute(ctx, validState())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Compute() error = %v, want context.Canceled", err)
	}
}

func TestCalculator_Compute_Logs(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := NewCalculator(WithLogger(log.NewZerologAdapterWithLogger(zl)))

	if _, err := c.Compute(context.Background(), validState()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "motion computed") {
		t.Errorf("expected debug log, got %q", buf.String())
	}

	buf.Reset()
	s := validState()
	s.Time = -1
	if _, err := c.Compute(context.Background(), s); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "motion state rejected") {
		t.Errorf("expected rejection log, got %q", buf.String())
	}
}
