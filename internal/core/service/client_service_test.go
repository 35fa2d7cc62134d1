package service

import (
	"context"
	"errors"
	"testing"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

func TestClientService_Create_Success(t *testing.T) {
	repo := newStubClientRepo()
	audit := &stubAuditRecorder{}
	svc := NewClientService(repo, audit, discardLogger)

	id, err := svc.Create(context.Background(), ports.CreateClientInput{
		FirstName: "Luis",
		LastName:  "Ortega",
		Email:     "luis@example.com",
		ActorRole: domain.RoleAssistant,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[id]
	if stored == nil {
		t.Fatal("client not persisted")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("created_at must be set")
	}
	if len(audit.records) != 1 || audit.records[0].Entity != "client" || audit.records[0].EntityID != id {
		t.Errorf("wrong audit trail: %+v", audit.records)
	}
}

func TestClientService_Create_AuditFailureDoesNotFailCreate(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, &stubAuditRecorder{recordErr: errors.New("store down")}, discardLogger)

	id, err := svc.Create(context.Background(), ports.CreateClientInput{
		FirstName: "Luis", LastName: "Ortega", Email: "luis@example.com", ActorRole: domain.RoleAssistant,
	})
	if err != nil {
		t.Fatalf("create must succeed despite audit failure, got %v", err)
	}
	if repo.byID[id] == nil {
		t.Error("client must be persisted despite audit failure")
	}
}

func TestClientService_List_Search(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, &stubAuditRecorder{}, discardLogger)
	_, _ = svc.Create(context.Background(), ports.CreateClientInput{FirstName: "Luis", LastName: "Ortega", Email: "luis@example.com", ActorRole: domain.RoleAssistant})
	_, _ = svc.Create(context.Background(), ports.CreateClientInput{FirstName: "Maria", LastName: "Santos", Email: "maria@example.com", ActorRole: domain.RoleAssistant})

	found, err := svc.List(context.Background(), ports.ClientFilter{Search: "santos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].FirstName != "Maria" {
		t.Errorf("unexpected search result: %+v", found)
	}
}
