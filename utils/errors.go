package utils

import "errors"

// Errors in this class signal a broken internal invariant, i.e. a bug in the
// tree engine itself rather than bad input. They are surfaced (or panicked)
// instead of recovered, since recovering would keep corrupting the tree.
var (
	ErrRotationChildMissing = errors.New("invalid rotation: required child is missing")
	ErrHeightMismatch       = errors.New("invalid height cache: stored height diverges from structure")
	ErrTreeCorrupted        = errors.New("tree corrupted: internal invariant broken")
)
