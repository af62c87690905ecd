package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	BranchName          string
	CommitSHA           string
	TreeSHA             string
	BlobSHA             string
	LeaseToken          string
	LockResource        string
	RequestID           string
	RunStatus           string
)

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusPartial   RunStatus = "partial"
	RunStatusSkipped   RunStatus = "skipped"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
