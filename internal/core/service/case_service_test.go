package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

func caseInput(clientID string) ports.CreateCaseInput {
	return ports.CreateCaseInput{
		ClientID:  clientID,
		Title:     "Property sale deed",
		Type:      "deed",
		ActorRole: domain.RoleNotary,
		ActorID:   "user_1",
	}
}

func TestCaseService_Create_StartsAsNew(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)

	id, err := svc.Create(context.Background(), caseInput(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[id]
	if stored == nil {
		t.Fatal("case not persisted")
	}
	if stored.Status != domain.CaseStatusNew {
		t.Errorf("expected status %q, got %q", domain.CaseStatusNew, stored.Status)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestCaseService_Create_WritesOneAuditEntry(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)

	id, err := svc.Create(context.Background(), caseInput(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(audit.records))
	}
	rec := audit.records[0]
	if rec.Action != "create" || rec.Entity != "case" || rec.EntityID != id {
		t.Errorf("wrong audit record: %+v", rec)
	}
	if rec.ActorRole != domain.RoleNotary {
		t.Errorf("expected actor role %q, got %q", domain.RoleNotary, rec.ActorRole)
	}
}

func TestCaseService_Create_UnknownClient(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)

	_, err := svc.Create(context.Background(), caseInput("client_missing"))
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if len(repo.byID) != 0 {
		t.Error("nothing must be persisted when the client check fails")
	}
	if len(audit.records) != 0 {
		t.Error("no audit record must be written when the client check fails")
	}
}

func TestCaseService_Create_ExistingClient(t *testing.T) {
	clients := newStubClientRepo()
	clientID, _ := clients.Create(context.Background(), &domain.Client{FirstName: "Ana", LastName: "Reyes"})
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, clients, &stubAuditRecorder{}, discardLogger)

	id, err := svc.Create(context.Background(), caseInput(clientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.byID[id].ClientID != clientID {
		t.Errorf("expected client id %q, got %q", clientID, repo.byID[id].ClientID)
	}
}

func TestCaseService_Create_AuditFailureDoesNotFailCreate(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{recordErr: errors.New("audit store down")}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)

	id, err := svc.Create(context.Background(), caseInput(""))
	if err != nil {
		t.Fatalf("create must succeed despite audit failure, got %v", err)
	}
	if repo.byID[id] == nil {
		t.Error("case must be persisted despite audit failure")
	}
}

func TestCaseService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)
	id, _ := svc.Create(context.Background(), caseInput(""))

	err := svc.UpdateStatus(context.Background(), ports.UpdateCaseStatusInput{
		CaseID: id, Status: "Pending", ActorRole: domain.RoleNotary,
	})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.byID[id].Status != domain.CaseStatusNew {
		t.Error("status must be unchanged after a rejected transition")
	}
}

func TestCaseService_UpdateStatus_UnknownCase(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), newStubClientRepo(), &stubAuditRecorder{}, discardLogger)

	err := svc.UpdateStatus(context.Background(), ports.UpdateCaseStatusInput{
		CaseID: "case_missing", Status: string(domain.CaseStatusDraft), ActorRole: domain.RoleNotary,
	})
	if !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestCaseService_UpdateStatus_LastWriteWins(t *testing.T) {
	repo := newStubCaseRepo()
	audit := &stubAuditRecorder{}
	svc := NewCaseService(repo, newStubClientRepo(), audit, discardLogger)
	id, _ := svc.Create(context.Background(), caseInput(""))

	transitions := []domain.CaseStatus{
		domain.CaseStatusDraft,
		domain.CaseStatusWaitingSignature,
		domain.CaseStatusCompleted,
	}
	for _, target := range transitions {
		if err := svc.UpdateStatus(context.Background(), ports.UpdateCaseStatusInput{
			CaseID: id, Status: string(target), ActorRole: domain.RoleNotary,
		}); err != nil {
			t.Fatalf("transition to %q failed: %v", target, err)
		}
	}

	if repo.byID[id].Status != domain.CaseStatusCompleted {
		t.Errorf("expected final status %q, got %q", domain.CaseStatusCompleted, repo.byID[id].Status)
	}
	// One create entry plus one per transition.
	if len(audit.records) != 1+len(transitions) {
		t.Errorf("expected %d audit records, got %d", 1+len(transitions), len(audit.records))
	}
	last := audit.records[len(audit.records)-1]
	if last.Action != "update_status" || last.Details["status"] != string(domain.CaseStatusCompleted) {
		t.Errorf("wrong final audit record: %+v", last)
	}
}

func TestCaseService_UpdateStatus_TouchesUpdatedAt(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, newStubClientRepo(), &stubAuditRecorder{}, discardLogger)
	id, _ := svc.Create(context.Background(), caseInput(""))
	repo.byID[id].UpdatedAt = time.Time{}

	if err := svc.UpdateStatus(context.Background(), ports.UpdateCaseStatusInput{
		CaseID: id, Status: string(domain.CaseStatusArchived), ActorRole: domain.RoleNotary,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.byID[id].UpdatedAt.IsZero() {
		t.Error("updated_at must be touched on a status transition")
	}
}

func TestCaseService_List_FiltersByStatus(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, newStubClientRepo(), &stubAuditRecorder{}, discardLogger)
	id1, _ := svc.Create(context.Background(), caseInput(""))
	_, _ = svc.Create(context.Background(), caseInput(""))
	_ = svc.UpdateStatus(context.Background(), ports.UpdateCaseStatusInput{
		CaseID: id1, Status: string(domain.CaseStatusArchived), ActorRole: domain.RoleNotary,
	})

	archived, err := svc.List(context.Background(), ports.ListCasesInput{Status: string(domain.CaseStatusArchived)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(archived) != 1 || archived[0].ID != id1 {
		t.Errorf("expected only %q in archived listing, got %d rows", id1, len(archived))
	}
}
