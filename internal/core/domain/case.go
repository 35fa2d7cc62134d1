package domain

import (
	"errors"
	"time"
)

// CaseStatus represents the lifecycle state of a legal case.
type CaseStatus string

const (
	CaseStatusNew              CaseStatus = "New"
	CaseStatusDraft            CaseStatus = "Draft"
	CaseStatusWaitingSignature CaseStatus = "Waiting Signature"
	CaseStatusCompleted        CaseStatus = "Completed"
	CaseStatusArchived         CaseStatus = "Archived"
)

var caseStatuses = []CaseStatus{
	CaseStatusNew,
	CaseStatusDraft,
	CaseStatusWaitingSignature,
	CaseStatusCompleted,
	CaseStatusArchived,
}

var ErrCaseNotFound = errors.New("case not found")
var ErrInvalidStatus = errors.New("invalid status")

// Valid reports whether s is one of the known case statuses.
//
// Any valid status is reachable from any other: the office needs manual
// overrides, so no transition graph is enforced here. Business terminality,
// if ever wanted, belongs in a policy layer above this one.
func (s CaseStatus) Valid() bool {
	for _, known := range caseStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// OpenCaseStatuses returns the statuses counted as "open" on the dashboard.
func OpenCaseStatuses() []CaseStatus {
	return []CaseStatus{CaseStatusNew, CaseStatusDraft, CaseStatusWaitingSignature}
}

// Case is the aggregate for a single notarial matter.
type Case struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	ClientID    string     `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Type        string     `json:"type" bson:"type"`
	Status      CaseStatus `json:"status" bson:"status"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
