package dltableau

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTableauRejectsMissingConcept(t *testing.T) {
	_, err := NewTableau(KnowledgeBase{})
	require.Error(t, err)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	require.Equal(t, ErrKindBadConcept, buildErr.Kind)
}

func TestNewTableauAggregatesMultipleErrors(t *testing.T) {
	_, err := NewTableau(KnowledgeBase{
		ABox: []ABoxEntry{{Individual: ""}},
		RBox: []RBoxEdge{{Role: "", From: "", To: "b"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), string(ErrKindBadABox))
	require.Contains(t, err.Error(), string(ErrKindBadRBox))
	require.Contains(t, err.Error(), string(ErrKindBadConcept))
}

func TestNewTableauSeedsABoxConceptsAndTBox(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		ABox: []ABoxEntry{
			{Individual: "alice", Concepts: []Formula{NewAtom("Person")}},
		},
		TBox: []*Conditional{
			NewConditional(NewAtom("Person"), NewAtom("Mortal")),
		},
		Concept: NewAtom("Top"),
	})
	require.NoError(t, err)

	in := tableau.Interpretation()
	alice := in.WorldByName("alice")
	require.NotNil(t, alice)
	require.True(t, alice.AllFormulas().Contains(NewAtom("Person")))

	normalizedTBox := NewConditional(NewAtom("Person"), NewAtom("Mortal")).Normalize()
	require.True(t, alice.AllFormulas().Contains(normalizedTBox), "TBox must be seeded into ABox worlds too")

	conceptWorld := in.WorldByName("w0")
	require.NotNil(t, conceptWorld)
	require.True(t, conceptWorld.AllFormulas().Contains(NewAtom("Top")))
}

func TestNewTableauAvoidsConceptWorldNameCollision(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		ABox: []ABoxEntry{
			{Individual: "w0", Concepts: []Formula{NewAtom("Person")}},
		},
		Concept: NewAtom("Top"),
	})
	require.NoError(t, err)

	in := tableau.Interpretation()
	require.NotNil(t, in.WorldByName("w0"))
	conceptWorld := in.WorldByName("w00")
	require.NotNil(t, conceptWorld, "concept world should fall back to w00 when w0 is already an ABox individual")
	require.True(t, conceptWorld.AllFormulas().Contains(NewAtom("Top")))
}

func TestNewTableauCreatesRBoxWorldsNotPresentInABox(t *testing.T) {
	tableau, err := NewTableau(KnowledgeBase{
		RBox: []RBoxEdge{
			{Role: "friendOf", From: "alice", To: "bob"},
		},
		Concept: NewAtom("Top"),
	})
	require.NoError(t, err)

	in := tableau.Interpretation()
	alice := in.WorldByName("alice")
	bob := in.WorldByName("bob")
	require.NotNil(t, alice)
	require.NotNil(t, bob)
	require.Contains(t, in.RelatedWorlds(alice, "friendOf"), bob)
}
