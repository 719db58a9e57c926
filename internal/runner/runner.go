// Package runner executes an ordered list of named steps against the
// database, stopping at the first failure.
package runner

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

type Runner struct {
	steps []Step
	quiet bool
}

func New(steps ...Step) *Runner {
	return &Runner{steps: steps}
}

func (r *Runner) Quiet() *Runner {
	r.quiet = true
	return r
}

// Run executes the steps in order. The first error aborts the remaining
// sequence; nothing is retried and no partial-success bookkeeping is kept.
func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.steps {
		if !r.quiet {
			color.Cyan("⚡ %s...", step.Name)
		}
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
		if !r.quiet {
			color.Green("✅ %s", step.Name)
		}
	}
	return nil
}
