/*
Package sweep runs one scenario many times while varying a single parameter.

PURPOSE:
  An analyst rarely looks at one run. The usual question is "how does the
  cash curve move as survival salary goes from 4k to 9k?" A sweep copies a
  base scenario, applies each value of an Axis to the copy and runs it.

RANDOMNESS:
  Every point runs on its own RandomSource, all seeded with the same value.
  With common random numbers the difference between two points comes from
  the parameter, not from a different draw sequence. (Points that change
  how many sales are made will still consume the stream differently from
  that month on.)

EXAMPLE:
  axis, _ := sweep.LookupAxis("survival-salary")
  points, err := sweep.NewSweeper(nil).Run(base, axis, sweep.Range(4000, 10000, 1000), 2018)

SEE ALSO:
  - axes.go: Built-in axes
  - report/writer.go: WriteSweep
*/
package sweep

import (
	"fmt"
	"log/slog"

	"github.com/warp/startup-model/founder"
)

// Point is one value of the swept parameter and the run it produced.
type Point struct {
	Value float64
	Run   *founder.Run
}

// Sweeper runs sweeps sequentially on a founder.Runner.
type Sweeper struct {
	Runner *founder.Runner
}

// NewSweeper creates a sweeper whose runs log to logger (nil discards).
func NewSweeper(logger *slog.Logger) *Sweeper {
	return &Sweeper{Runner: founder.NewRunner(logger)}
}

// Run executes one run per value. It stops at the first invalid scenario.
func (s *Sweeper) Run(base founder.Scenario, axis Axis, values []float64, seed uint64) ([]Point, error) {
	points := make([]Point, 0, len(values))
	for _, v := range values {
		scenario := base
		axis.Apply(&scenario, v)

		run, err := s.Runner.Run(scenario, seed)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", axis.Name, v, err)
		}
		points = append(points, Point{Value: v, Run: run})
	}
	return points, nil
}

// Range returns from, from+step, ... stopping before to. A non-positive
// step yields nothing.
func Range(from, to, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	for i := 0; ; i++ {
		v := from + float64(i)*step
		if v >= to {
			break
		}
		out = append(out, v)
	}
	return out
}
