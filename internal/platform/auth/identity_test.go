package auth

import (
	"net/url"
	"testing"

	"github.com/carebook/carebook/internal/platform/apperr"
)

func TestParseIdentity(t *testing.T) {
	id, err := ParseIdentity(`{"username":"asha01","name":"Asha","role":"Patient"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Username != "asha01" {
		t.Errorf("unexpected username: %s", id.Username)
	}
	if id.Role != RolePatient {
		t.Errorf("unexpected role: %s", id.Role)
	}
}

func TestParseIdentity_Missing(t *testing.T) {
	_, err := ParseIdentity("")
	if err == nil {
		t.Fatal("expected error for empty blob")
	}
	if !apperr.Is(err, apperr.MissingIdentity) {
		t.Errorf("expected missing_identity, got %s", apperr.KindOf(err))
	}
}

func TestParseIdentity_URLEncoded(t *testing.T) {
	raw := url.QueryEscape(`{"username":"drkarim","name":"Dr. Karim","role":"Doctor"}`)
	id, err := ParseIdentity(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Name != "Dr. Karim" {
		t.Errorf("unexpected name: %s", id.Name)
	}
}

func TestParseIdentity_DoubleJSONEncoded(t *testing.T) {
	// A JSON string whose content is the serialized object.
	raw := `"{\"username\":\"medplus\",\"name\":\"MedPlus\",\"role\":\"Pharmacy\"}"`
	id, err := ParseIdentity(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != RolePharmacy {
		t.Errorf("unexpected role: %s", id.Role)
	}
}

func TestParseIdentity_Garbage(t *testing.T) {
	_, err := ParseIdentity("not json at all")
	if err == nil {
		t.Fatal("expected error for garbage blob")
	}
	if !apperr.Is(err, apperr.InvalidIdentity) {
		t.Errorf("expected invalid_identity, got %s", apperr.KindOf(err))
	}
}

func TestParseIdentity_MissingRequiredFields(t *testing.T) {
	for _, raw := range []string{
		`{"name":"No Username","role":"Doctor"}`,
		`{"username":"norole","name":"No Role"}`,
	} {
		if _, err := ParseIdentity(raw); !apperr.Is(err, apperr.InvalidIdentity) {
			t.Errorf("blob %s: expected invalid_identity, got %v", raw, err)
		}
	}
}

func TestParseIdentity_UnknownRoleSurvivesParsing(t *testing.T) {
	// Unknown roles are not rejected here; the role gate denies them later.
	id, err := ParseIdentity(`{"username":"x","role":"Janitor"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != Role("Janitor") {
		t.Errorf("unexpected role: %s", id.Role)
	}
}
