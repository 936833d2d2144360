package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/store"
)

func TestCreateTeamMember(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/team-members", map[string]any{
		"name":   "sam",
		"role":   "Member",
		"avatar": "S",
		"color":  "blue",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var member models.TeamMember
	decodeBody(t, w, &member)
	if member.ID == "" {
		t.Error("expected a generated id")
	}
	if member.Name != "sam" {
		t.Errorf("expected name sam, got %q", member.Name)
	}
}

func TestCreateTeamMemberRequiresName(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/team-members", map[string]any{
		"role": "Member",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetTeamMember(t *testing.T) {
	r, s := newTestServer(t)

	created, err := s.CreateTeamMember(context.Background(), store.InsertTeamMember{
		Name: "sam", Role: "Member", Avatar: "S", Color: "blue",
	})
	if err != nil {
		t.Fatalf("CreateTeamMember failed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/team-members/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var member models.TeamMember
	decodeBody(t, w, &member)
	if member != created {
		t.Errorf("got %+v, want %+v", member, created)
	}

	w = doJSON(t, r, http.MethodGet, "/api/team-members/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
}

// The PATCH surface only accepts role. Other keys in the payload must be
// dropped, even though the store itself could patch them.
func TestUpdateTeamMemberAllowListsRole(t *testing.T) {
	r, s := newTestServer(t)

	created, err := s.CreateTeamMember(context.Background(), store.InsertTeamMember{
		Name: "sam", Role: "Member", Avatar: "S", Color: "blue",
	})
	if err != nil {
		t.Fatalf("CreateTeamMember failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPatch, "/api/team-members/"+created.ID, map[string]any{
		"role":  "Lead",
		"name":  "hacked",
		"color": "red",
		"id":    "forged",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var member models.TeamMember
	decodeBody(t, w, &member)

	if member.Role != "Lead" {
		t.Errorf("expected role Lead, got %q", member.Role)
	}
	if member.Name != "sam" {
		t.Errorf("name was patched through the public API: %q", member.Name)
	}
	if member.Color != "blue" {
		t.Errorf("color was patched through the public API: %q", member.Color)
	}
	if member.ID != created.ID {
		t.Errorf("id was patched through the public API: %q", member.ID)
	}
}

func TestUpdateTeamMemberNotFoundHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/team-members/missing", map[string]any{"role": "Lead"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNoTeamMemberDeleteRoute(t *testing.T) {
	r, s := newTestServer(t)

	created, err := s.CreateTeamMember(context.Background(), store.InsertTeamMember{
		Name: "sam", Role: "Member", Avatar: "S", Color: "blue",
	})
	if err != nil {
		t.Fatalf("CreateTeamMember failed: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/team-members/"+created.ID, nil)
	if w.Code != http.StatusNotFound && w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected member delete to be unsupported, got %d", w.Code)
	}
}
