package trxmgr

import "github.com/hance08/keasec/internal/model"

// Strategy selects how Merge folds the dier into the survivor. It is
// implemented by FullRemoval and SplitReplacement only.
type Strategy interface {
	isStrategy()
	String() string
}

// FullRemoval deletes the dier and leaves the survivor untouched.
type FullRemoval struct{}

func (FullRemoval) isStrategy() {}

func (FullRemoval) String() string { return "full-removal" }

// SplitReplacement re-records one leg of the dier on the survivor: the
// survivor's SplitToReplace gives way to a negated copy of the dier's
// SplitToCopy, booked on SplitToReplace's account.
type SplitReplacement struct {
	SplitToCopy    model.QualifiedSplitID
	SplitToReplace model.QualifiedSplitID
}

func (SplitReplacement) isStrategy() {}

func (SplitReplacement) String() string { return "split-replacement" }
