package dltableau

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildDetectsDirectContradiction(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewConjunction(NewAtom("Person"), NewNegation(NewAtom("Person"))),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictUnsatisfiable, result.Verdict)
	require.GreaterOrEqual(t, result.ClosedBranches, 1)
}

func TestBuildFindsAtomicConceptSatisfiable(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewAtom("Person"),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictSatisfiable, result.Verdict)
	require.Equal(t, 0, result.ClosedBranches)
}

func TestBuildExpandsDiamondIntoFreshSuccessor(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewDiamond("knows", NewAtom("Person")),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictSatisfiable, result.Verdict)

	in := tableau.Interpretation()
	require.Greater(t, len(in.Worlds()), 1, "expected the diamond to have spawned a successor world")
}

func TestBuildHonorsExplicitTimeout(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewAtom("Person"),
	}, WithTimeout(0))
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictTimedOut, result.Verdict)
}

func TestBuildHonorsContextCancellation(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewAtom("Person"),
	}, WithTimeout(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := tableau.Build(ctx)
	require.Equal(t, VerdictTimedOut, result.Verdict)
}

func TestInitialInterpretationSurvivesSubsequentMutation(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewDiamond("knows", NewAtom("Person")),
	})
	require.NoError(t, err)

	before := tableau.InitialInterpretation()
	require.Len(t, before.Worlds(), 1)

	tableau.Build(context.Background())

	after := tableau.InitialInterpretation()
	require.Len(t, after.Worlds(), 1, "InitialInterpretation must stay frozen at construction time regardless of how far Build ran")
}

// The remaining tests cover the end-to-end scenarios literally spelled out
// alongside the testable properties: a fixed input, an expected verdict.

func TestScenarioPlainConjunctionIsSatisfiable(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewConjunction(NewAtom("A"), NewAtom("B")),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictSatisfiable, result.Verdict)
}

func TestScenarioDiamondWithTBoxExpandsSuccessor(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		TBox: []*Conditional{
			NewConditional(NewAtom("A"), NewAtom("B")),
		},
		Concept: NewDiamond("r", NewAtom("A")),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictSatisfiable, result.Verdict)

	var successor *World
	for _, w := range tableau.Interpretation().Worlds() {
		if w.AllFormulas().Contains(NewAtom("A")) {
			successor = w
		}
	}
	require.NotNil(t, successor, "expected some world to satisfy A")
	require.True(t, successor.AllFormulas().Contains(NewAtom("B")),
		"the TBox A->B should have forced B onto the same world as A")
}

func TestScenarioDiamondAndItsNegationClash(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewConjunction(
			NewDiamond("r", NewAtom("A")),
			NewNegation(NewDiamond("r", NewAtom("A"))),
		),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictUnsatisfiable, result.Verdict)
}

func TestScenarioGlobalDescriptionOverTwoABoxWitnessesIsSatisfiable(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		ABox: []ABoxEntry{
			{Individual: "w1", Concepts: []Formula{NewAtom("A")}},
			{Individual: "w2", Concepts: []Formula{NewAtom("A")}},
		},
		Concept: NewGlobalDesc(NewAtom("A"), NewAtom("B")),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictSatisfiable, result.Verdict)

	in := tableau.Interpretation()
	w1, w2 := in.WorldByName("w1"), in.WorldByName("w2")
	require.NotNil(t, w1)
	require.NotNil(t, w2)
	require.True(t, w1.AllFormulas().Contains(NewAtom("B")) || w2.AllFormulas().Contains(NewAtom("B")),
		"one of the two A-witnesses must pick up B, or rule 2 must have unified them")
}

func TestScenarioLocalDescriptionContradictionAtSameWorldIsUnsatisfiable(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		Concept: NewConjunction(
			NewNegation(NewLocalDesc(NewAtom("A"))),
			NewLocalDesc(NewAtom("A")),
		),
	})
	require.NoError(t, err)

	result := tableau.Build(context.Background())
	require.Equal(t, VerdictUnsatisfiable, result.Verdict)
}
