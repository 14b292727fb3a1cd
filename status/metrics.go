package status

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Counter keys mirrored locally for the HUD and tests
const (
	KeyTicks        = "sim.ticks"
	KeyRespawns     = "sim.respawns"
	KeyPickups      = "sim.pickups"
	KeyGoals        = "sim.goals"
	KeyRewindFrames = "sim.rewind.frames"
	KeyStepSeconds  = "sim.step.seconds"
)

// Metrics records simulation counters to an OTel meter and a local mirror
// A nil *Metrics is valid and records nothing
type Metrics struct {
	ticks    metric.Int64Counter
	step     metric.Float64Histogram
	respawns metric.Int64Counter
	pickups  metric.Int64Counter
	goals    metric.Int64Counter
	rewind   metric.Int64Counter

	Local    *Counters
	LastStep AtomicFloat // Seconds spent in the most recent tick
}

// NewMetrics creates instruments on meter; nil meter uses the global provider
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.GetMeterProvider().Meter("github.com/lixenwraith/marble-sandbox")
	}

	m := &Metrics{Local: NewCounters()}
	var err error
	if m.ticks, err = meter.Int64Counter(KeyTicks, metric.WithDescription("Simulation ticks")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyTicks, err)
	}
	if m.step, err = meter.Float64Histogram(KeyStepSeconds, metric.WithUnit("s"), metric.WithDescription("Tick wall time")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyStepSeconds, err)
	}
	if m.respawns, err = meter.Int64Counter(KeyRespawns, metric.WithDescription("Out-of-bounds respawns")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyRespawns, err)
	}
	if m.pickups, err = meter.Int64Counter(KeyPickups, metric.WithDescription("Power-ups and collectibles taken")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyPickups, err)
	}
	if m.goals, err = meter.Int64Counter(KeyGoals, metric.WithDescription("Goals scored")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyGoals, err)
	}
	if m.rewind, err = meter.Int64Counter(KeyRewindFrames, metric.WithDescription("Rewind frames consumed")); err != nil {
		return nil, fmt.Errorf("creating %s: %w", KeyRewindFrames, err)
	}
	return m, nil
}

// NopMetrics returns metrics backed by the noop provider
func NopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter("noop"))
	return m
}

func (m *Metrics) Tick(d time.Duration) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.ticks.Add(ctx, 1)
	m.step.Record(ctx, d.Seconds())
	m.Local.Get(KeyTicks).Add(1)
	m.LastStep.Set(d.Seconds())
}

func (m *Metrics) Respawn(marble string) {
	if m == nil {
		return
	}
	m.respawns.Add(context.Background(), 1, metric.WithAttributes(attribute.String("marble", marble)))
	m.Local.Get(KeyRespawns).Add(1)
}

func (m *Metrics) Pickup(kind string) {
	if m == nil {
		return
	}
	m.pickups.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
	m.Local.Get(KeyPickups).Add(1)
}

func (m *Metrics) Goal(level string) {
	if m == nil {
		return
	}
	m.goals.Add(context.Background(), 1, metric.WithAttributes(attribute.String("level", level)))
	m.Local.Get(KeyGoals).Add(1)
}

func (m *Metrics) RewindFrame() {
	if m == nil {
		return
	}
	m.rewind.Add(context.Background(), 1)
	m.Local.Get(KeyRewindFrames).Add(1)
}
