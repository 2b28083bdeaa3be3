package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLeadRepository struct {
	leads []Lead
}

func (m *mockLeadRepository) CreateLead(ctx context.Context, lead *Lead) error {
	lead.ID = "lead-1"
	m.leads = append(m.leads, *lead)
	return nil
}

func TestListPlansHasThreeTiers(t *testing.T) {
	service := NewService(&mockLeadRepository{})

	plans := service.ListPlans()
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[1].Name != "Profissional" || !plans[1].Popular {
		t.Errorf("expected Profissional as the highlighted middle tier")
	}
}

func TestCreateLeadRequiresNameAndEmail(t *testing.T) {
	repo := &mockLeadRepository{}
	service := NewService(repo)

	_, err := service.CreateLead(context.Background(), "", "x@y.com", "", "")
	if !errors.Is(err, ErrMissingContact) {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
	if len(repo.leads) != 0 {
		t.Errorf("lead was persisted despite invalid input")
	}
}

func TestContactEndpoint(t *testing.T) {
	repo := &mockLeadRepository{}
	handler := NewHandler(NewService(repo))

	router := gin.New()
	router.POST("/site/contact", handler.CreateLead)

	body, _ := json.Marshal(gin.H{
		"name":    "Maria",
		"email":   "maria@example.com",
		"message": "Quero saber mais",
	})
	req := httptest.NewRequest("POST", "/site/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(repo.leads))
	}
	if repo.leads[0].Email != "maria@example.com" {
		t.Errorf("got email %q", repo.leads[0].Email)
	}
}
