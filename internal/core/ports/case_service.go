package ports

import (
	"context"
	"time"

	"github.com/notarium/notary-api/internal/core/domain"
)

// CreateCaseInput carries all data needed to open a new case.
type CreateCaseInput struct {
	ClientID    string // optional; when set, must reference an existing client
	Title       string
	Type        string
	Description string
	AssignedTo  string
	DueDate     *time.Time
	ActorRole   string
	ActorID     string
}

// UpdateCaseStatusInput carries a single status transition request.
type UpdateCaseStatusInput struct {
	CaseID    string
	Status    string
	ActorRole string
	ActorID   string
}

// ListCasesInput carries the parameters for the case listing.
type ListCasesInput struct {
	Status string
	Limit  int
}

// CaseService is the case workflow component: it owns status legality and the
// audit obligation for every case mutation.
type CaseService interface {
	Create(ctx context.Context, in CreateCaseInput) (string, error)
	UpdateStatus(ctx context.Context, in UpdateCaseStatusInput) error
	List(ctx context.Context, in ListCasesInput) ([]*domain.Case, error)
}
