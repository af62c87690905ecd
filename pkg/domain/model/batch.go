package model

import (
	"fmt"

	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// BranchTip is the current head of a branch: the commit it points at and
// that commit's tree.
type BranchTip struct {
	Name   types.BranchName
	Commit types.CommitSHA
	Tree   types.TreeSHA
}

// PublishBranch tracks the branch a run commits generated cards onto. It is
// created lazily on the first artifact and its tip advances with every
// subsequent commit. Only one run can hold the lock, so there is never a
// concurrent writer to the same branch.
type PublishBranch struct {
	Name      types.BranchName
	TipCommit types.CommitSHA
	TipTree   types.TreeSHA
}

// BatchResult summarizes one batch run for logs and for the HTTP response
// body of the batch endpoint.
type BatchResult struct {
	Status         types.RunStatus
	Published      int
	Skipped        int
	Remaining      int
	Branch         types.BranchName
	PullRequestURL string
}

func (x *BatchResult) String() string {
	switch x.Status {
	case types.RunStatusSkipped:
		return "skipped: another run is in progress"

	case types.RunStatusPartial:
		return fmt.Sprintf("partial: published %d card(s) to %s (%d remaining), pull request: %s",
			x.Published, x.Branch, x.Remaining, x.PullRequestURL)

	default:
		if x.Published == 0 {
			return "completed: no missing cards"
		}
		return fmt.Sprintf("completed: published %d card(s) to %s, pull request: %s",
			x.Published, x.Branch, x.PullRequestURL)
	}
}
