package trxmgr

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/sirupsen/logrus"
)

type Reconciler struct {
	repo   store.Repository
	policy config.Policy
}

func NewReconciler(repo store.Repository, policy config.Policy) *Reconciler {
	return &Reconciler{repo: repo, policy: policy}
}

type MergeResult struct {
	Strategy             Strategy
	SurvivorID           int64
	RemovedTransactionID int64
	// Set by SplitReplacement only.
	NewSplitID     int64
	RemovedSplitID int64
}

// Merge folds the dier transaction into the survivor. Nothing is written
// unless every precondition and the plausibility check pass; the writes
// themselves run in one unit of work.
func (r *Reconciler) Merge(ctx context.Context, survivorID, dierID int64, strategy Strategy) (*MergeResult, error) {
	const op = constants.OpMerge

	if survivorID == 0 || dierID == 0 {
		return nil, ledgererr.InvalidArgument(op, "survivor and dier transaction must be set")
	}
	if survivorID == dierID {
		return nil, ledgererr.InvalidArgument(op, "cannot merge transaction %d with itself", survivorID)
	}
	if strategy == nil {
		return nil, ledgererr.InvalidArgument(op, "merge strategy must be set")
	}

	survivor, err := r.loadTransaction(op, "survivor", survivorID)
	if err != nil {
		return nil, err
	}
	dier, err := r.loadTransaction(op, "dier", dierID)
	if err != nil {
		return nil, err
	}

	var toCopy, toReplace *model.Split
	if sr, ok := strategy.(SplitReplacement); ok {
		toCopy, toReplace, err = splitReplacementSplits(op, sr, survivor, dier)
		if err != nil {
			return nil, err
		}
	}

	if err := PlausibilityCheck(ctx, r.repo, r.policy, survivor, dier); err != nil {
		return nil, err
	}

	result := &MergeResult{
		Strategy:             strategy,
		SurvivorID:           survivorID,
		RemovedTransactionID: dierID,
	}

	err = r.repo.ExecTx(func(repo store.Repository) error {
		if toCopy != nil {
			newSplit := &model.Split{
				AccountID: toReplace.AccountID,
				Value:     toCopy.Value.Neg(),
				Shares:    toCopy.Shares.Neg(),
				Action:    toCopy.Action,
				Memo:      toCopy.Memo,
			}
			splitID, err := repo.CreateSplit(survivorID, newSplit)
			if err != nil {
				return err
			}
			result.NewSplitID = splitID

			if err := repo.DeleteSplit(toReplace.ID); err != nil {
				return err
			}
			result.RemovedSplitID = toReplace.ID
		}

		return repo.DeleteTransaction(dierID)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to merge %d into %d: %w", op, dierID, survivorID, err)
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":            op,
		"op_id":         uuid.NewString(),
		"strategy":      strategy.String(),
		"survivor":      survivorID,
		"removed_tx":    dierID,
		"new_split":     result.NewSplitID,
		"removed_split": result.RemovedSplitID,
	}).Info("transactions merged")

	return result, nil
}

func (r *Reconciler) loadTransaction(op, role string, id int64) (*model.Transaction, error) {
	tx, err := r.repo.GetTransactionByID(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ledgererr.Wrap(ledgererr.KindInvalidState, op, err, "%s transaction %d cannot be resolved", role, id)
		}
		return nil, fmt.Errorf("%s: failed to load %s transaction: %w", op, role, err)
	}
	return tx, nil
}

// splitReplacementSplits checks that the split to copy lives on the dier
// and the split to replace on the survivor, and returns both.
func splitReplacementSplits(op string, sr SplitReplacement, survivor, dier *model.Transaction) (*model.Split, *model.Split, error) {
	if !sr.SplitToCopy.IsSet() || !sr.SplitToReplace.IsSet() {
		return nil, nil, ledgererr.InvalidArgument(op, "split to copy and split to replace must both be set")
	}
	if sr.SplitToCopy == sr.SplitToReplace {
		return nil, nil, ledgererr.InvalidArgument(op, "split to copy and split to replace must differ (%s)", sr.SplitToCopy)
	}

	toCopy := findSplit(dier, sr.SplitToCopy)
	if toCopy == nil {
		return nil, nil, ledgererr.InvalidArgument(op, "split %s does not belong to dier transaction %d", sr.SplitToCopy, dier.ID)
	}
	toReplace := findSplit(survivor, sr.SplitToReplace)
	if toReplace == nil {
		return nil, nil, ledgererr.InvalidArgument(op, "split %s does not belong to survivor transaction %d", sr.SplitToReplace, survivor.ID)
	}

	return toCopy, toReplace, nil
}

func findSplit(tx *model.Transaction, id model.QualifiedSplitID) *model.Split {
	if id.TransactionID != tx.ID {
		return nil
	}
	for _, split := range tx.Splits {
		if split.ID == id.SplitID {
			return split
		}
	}
	return nil
}
