/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jt05610/petri-inhibitor"
	"go.uber.org/zap"
)

var ErrStepLimit = errors.New("step limit reached")

// Outcome says why a run ended.
type Outcome string

const (
	Dead      Outcome = "no transition enabled"
	Satisfied Outcome = "stop condition met"
)

// Stop is checked before every firing; returning true ends the run.
type Stop[P comparable] func(petri.Marking[P]) (bool, error)

type Result[P comparable] struct {
	Marking petri.Marking[P]
	Steps   int
	Outcome Outcome
}

// drive fires the first enabled transition, in net order, until nothing is enabled,
// stop holds, or limit firings have happened. The initial marking is not modified.
func drive[P comparable](ctx context.Context, log *zap.Logger, n *petri.Net[P], m petri.Marking[P], limit int, stop Stop[P]) (*Result[P], error) {
	log = log.With(zap.String("run", uuid.NewString()))
	log.Debug("run started", zap.Stringer("marking", m))
	for step := 0; ; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if stop != nil {
			done, err := stop(m)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", step, err)
			}
			if done {
				log.Info("run finished", zap.Int("steps", step), zap.String("outcome", string(Satisfied)))
				return &Result[P]{Marking: m, Steps: step, Outcome: Satisfied}, nil
			}
		}
		enabled := n.Enabled(m)
		if len(enabled) == 0 {
			log.Info("run finished", zap.Int("steps", step), zap.String("outcome", string(Dead)))
			return &Result[P]{Marking: m, Steps: step, Outcome: Dead}, nil
		}
		if step >= limit {
			log.Warn("step limit reached", zap.Int("limit", limit), zap.Stringer("marking", m))
			return &Result[P]{Marking: m, Steps: step}, ErrStepLimit
		}
		t := enabled[0]
		next, err := t.Fire(m)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		log.Debug("fired",
			zap.Int("step", step),
			zap.String("transition", t.Name()),
			zap.Int("enabled", len(enabled)),
			zap.Stringer("marking", next),
		)
		m = next
	}
}
