package refining

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/types"
)

// State is the convergence loop's position in its lifecycle.
type State string

// Loop states. Converged and Exhausted are terminal.
const (
	// StateDrafting means the rewriter is producing a candidate.
	StateDrafting State = "drafting"
	// StateEvaluating means the evaluator is judging the latest candidate.
	StateEvaluating State = "evaluating"
	// StateConverged means the evaluator accepted a candidate.
	StateConverged State = "converged"
	// StateExhausted means the round budget ran out before convergence.
	// The latest candidate is still returned: the loop never hands back
	// content less refined than one full pass.
	StateExhausted State = "exhausted"
)

// DefaultMaxRounds bounds the loop when no explicit budget is configured.
const DefaultMaxRounds = 3

// Outcome is the terminal result of refining one content unit. The round
// sequence itself is discarded on termination; only the final round's
// verdict and feedback survive.
type Outcome struct {
	Unit       types.ContentUnit
	State      State
	RoundsUsed int
	Satisfied  bool
	Feedback   string
}

// Loop alternates the rewriter and evaluator over one content unit until
// the evaluator is satisfied or the round budget is exhausted. The round
// bound guarantees termination regardless of evaluator behavior.
type Loop struct {
	rewriter  *Rewriter
	evaluator *Evaluator
	maxRounds int
}

// NewLoop creates a convergence loop. A non-positive maxRounds falls back
// to DefaultMaxRounds.
func NewLoop(rewriter *Rewriter, evaluator *Evaluator, maxRounds int) *Loop {
	if maxRounds < 1 {
		maxRounds = DefaultMaxRounds
	}
	return &Loop{
		rewriter:  rewriter,
		evaluator: evaluator,
		maxRounds: maxRounds,
	}
}

// NewDefaultLoop creates a loop with default agent configurations over a
// shared client.
func NewDefaultLoop(client llm.Client, maxRounds int) *Loop {
	return NewLoop(
		NewRewriter(client, llm.DefaultRewriterConfig()),
		NewEvaluator(client, llm.DefaultEvaluatorConfig()),
		maxRounds,
	)
}

// Refine runs the loop for one content unit. Round 0 rewrites the original
// text; later rounds rewrite the previous candidate, carrying the
// evaluator's feedback forward. The input unit is never mutated.
func (l *Loop) Refine(ctx context.Context, unit types.ContentUnit, target string) (*Outcome, error) {
	if !unit.Type.IsValid() {
		return nil, fmt.Errorf("unknown content type %q", unit.Type)
	}

	state := StateDrafting
	candidate := unit.Text
	feedback := ""
	rounds := make([]types.RefinementRound, 0, l.maxRounds)

	for round := 0; round < l.maxRounds; round++ {
		rewritten, err := l.rewriter.Rewrite(ctx, candidate, unit.Type, target, feedback)
		if err != nil {
			return nil, fmt.Errorf("rewrite round %d: %w", round, err)
		}
		candidate = rewritten

		state = StateEvaluating
		satisfied, roundFeedback, err := l.evaluator.Evaluate(ctx, unit.Text, candidate, unit.Type, target)
		if err != nil {
			return nil, fmt.Errorf("evaluate round %d: %w", round, err)
		}

		rounds = append(rounds, types.RefinementRound{
			Round:     round,
			Candidate: candidate,
			Satisfied: satisfied,
			Feedback:  roundFeedback,
		})

		if satisfied {
			state = StateConverged
			break
		}
		if round == l.maxRounds-1 {
			state = StateExhausted
			break
		}

		feedback = roundFeedback
		state = StateDrafting
	}

	final := rounds[len(rounds)-1]
	return &Outcome{
		Unit:       unit.WithText(candidate),
		State:      state,
		RoundsUsed: len(rounds),
		Satisfied:  final.Satisfied,
		Feedback:   final.Feedback,
	}, nil
}

// MaxRounds returns the configured round budget.
func (l *Loop) MaxRounds() int {
	return l.maxRounds
}
