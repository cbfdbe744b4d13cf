package dltableau

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// BuildErrorKind classifies an input-shape problem the builder rejected
// before any search began.
type BuildErrorKind string

const (
	// ErrKindBadABox marks a malformed ABox entry.
	ErrKindBadABox BuildErrorKind = "bad_abox"
	// ErrKindBadRBox marks a malformed RBox entry.
	ErrKindBadRBox BuildErrorKind = "bad_rbox"
	// ErrKindBadTBox marks a TBox entry that is not a Conditional.
	ErrKindBadTBox BuildErrorKind = "bad_tbox"
	// ErrKindBadConcept marks a malformed target concept.
	ErrKindBadConcept BuildErrorKind = "bad_concept"
)

// BuildError is one specific input-shape violation found while
// constructing a Tableau. Path identifies where in the input it was
// found ("concept", or an index such as "abox[0]", "abox[0].concepts[1]",
// "rbox[2]", "tbox[1]"); Message is
// human-readable detail.
type BuildError struct {
	Kind    BuildErrorKind
	Path    string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
}

// buildErrors accumulates BuildErrors across an entire builder run so
// that a malformed knowledge base reports every problem at once instead
// of failing on the first.
type buildErrors struct {
	err *multierror.Error
}

func (b *buildErrors) add(kind BuildErrorKind, path, message string) {
	b.err = multierror.Append(b.err, &BuildError{Kind: kind, Path: path, Message: message})
}

func (b *buildErrors) errorOrNil() error {
	return b.err.ErrorOrNil()
}
