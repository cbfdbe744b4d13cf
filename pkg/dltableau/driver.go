package dltableau

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Verdict is the three-way outcome of a tableau search: the knowledge
// base is satisfiable, every branch closed, or the search ran out of
// its wall-clock budget before reaching either conclusion.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictSatisfiable
	VerdictUnsatisfiable
	VerdictTimedOut
)

func (v Verdict) String() string {
	switch v {
	case VerdictSatisfiable:
		return "satisfiable"
	case VerdictUnsatisfiable:
		return "unsatisfiable"
	case VerdictTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Result summarizes one completed tableau search.
type Result struct {
	Verdict        Verdict
	ClosedBranches int
	RulesApplied   int
}

// Tableau drives the expansion-rule search to a verdict over one
// knowledge base. It owns the single "current" branch plus a LIFO
// stack of sibling branches spawned by non-deterministic rules; a
// clash pops the next alternative off that stack instead of failing
// the whole search.
type Tableau struct {
	interpretation *Interpretation
	initial        *Interpretation
	config         *tableauConfig

	result Result
}

// InitialInterpretation returns a deep copy of the knowledge base as it
// stood right after construction, before any rule ran — useful for
// rendering "what was asked" alongside the eventual verdict.
func (t *Tableau) InitialInterpretation() *Interpretation {
	return t.initial.Clone()
}

// Interpretation returns the branch the search driver is currently
// positioned on. After Build returns, this is either the closing
// (clashed) branch of an unsatisfiable result, an open, fully expanded
// model witnessing satisfiability, or, after a timeout, the partially
// expanded branch the search stopped on.
func (t *Tableau) Interpretation() *Interpretation {
	return t.interpretation
}

// Result returns the outcome of the most recent Build call, or the
// zero Result if Build has not run yet.
func (t *Tableau) Result() Result {
	return t.result
}

// Build runs the fixed-priority expansion-rule search to completion,
// to a clash-closes-every-branch verdict, or to the configured
// timeout, whichever comes first. It is safe to call at most once per
// Tableau; calling it again restarts the search over whatever branch
// the previous call left t.interpretation on, which is almost never
// what a caller wants.
func (t *Tableau) Build(ctx context.Context) Result {
	var alternatives []*Interpretation
	start := time.Now()

	closedBranches := 0
	rulesApplied := 0
	verdict := VerdictUnknown
	log := t.config.logger

	// rulesExhausted counts consecutive rules, starting from the top of
	// defaultRuleOrder, that found nothing to do on the current branch.
	// Reaching the full rule count means the branch is fully expanded
	// and open: a model.
	rulesExhausted := 0

search:
	for rulesExhausted < len(defaultRuleOrder) {
		select {
		case <-ctx.Done():
			verdict = VerdictTimedOut
			break search
		default:
		}
		if time.Since(start) > t.config.timeout {
			verdict = VerdictTimedOut
			break search
		}

		rulesExhausted = 0
		for i, rule := range defaultRuleOrder {
			updated, clash, applied, alts := rule(t.interpretation)

			if clash {
				closedBranches++
				rulesApplied++
				log.Debug("branch closed", zap.Int("closed_branches", closedBranches))

				if len(alternatives) == 0 {
					verdict = VerdictUnsatisfiable
					break search
				}
				t.interpretation = alternatives[len(alternatives)-1]
				alternatives = alternatives[:len(alternatives)-1]
				break
			}

			if applied {
				t.interpretation = updated
				rulesApplied++
				alternatives = append(alternatives, alts...)
				log.Debug("rule applied",
					zap.String("rule", defaultRuleNames[i]),
					zap.Int("rules_applied", rulesApplied),
					zap.Int("alternatives_pending", len(alternatives)),
				)
				break
			}

			rulesExhausted++
		}
	}

	if verdict == VerdictUnknown {
		verdict = VerdictSatisfiable
	}

	t.result = Result{
		Verdict:        verdict,
		ClosedBranches: closedBranches,
		RulesApplied:   rulesApplied,
	}

	log.Info("tableau search finished",
		zap.String("verdict", verdict.String()),
		zap.Int("closed_branches", closedBranches),
		zap.Int("rules_applied", rulesApplied),
	)

	return t.result
}
