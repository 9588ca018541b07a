package bodyweight

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidWeight = errors.New("body weight must be greater than zero")

// Measurement is a single body weight reading on a calendar date.
type Measurement struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Log stores body weight measurements as an append-only list under a
// single blob key. Same-day measurements are all kept; Latest returns
// the last appended one.
type Log struct {
	kv  storage.KV
	now func() time.Time
}

func NewLog(kv storage.KV) *Log {
	return NewLogWithClock(kv, time.Now)
}

func NewLogWithClock(kv storage.KV, now func() time.Time) *Log {
	return &Log{
		kv:  kv,
		now: now,
	}
}

func (l *Log) Add(ctx context.Context, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyweight.log.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Float64("weight", weight))

	if weight <= 0 {
		return ErrInvalidWeight
	}

	measurements := storage.GetJSON(ctx, l.kv, storage.KeyBodyWeights, []Measurement{})
	measurements = append(measurements, Measurement{
		Date:   l.now().Format("2006-01-02"),
		Weight: weight,
	})
	if !storage.SetJSON(ctx, l.kv, storage.KeyBodyWeights, measurements) {
		return errors.New("failed to persist body weights")
	}
	return nil
}

// All returns every measurement in insertion order.
func (l *Log) All(ctx context.Context) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyweight.log.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return storage.GetJSON(ctx, l.kv, storage.KeyBodyWeights, []Measurement{}), nil
}

// Latest returns the most recently added measurement, or false when
// the log is empty.
func (l *Log) Latest(ctx context.Context) (_ *Measurement, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyweight.log.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements := storage.GetJSON(ctx, l.kv, storage.KeyBodyWeights, []Measurement{})
	if len(measurements) == 0 {
		return nil, false, nil
	}
	latest := measurements[len(measurements)-1]
	return &latest, true, nil
}
