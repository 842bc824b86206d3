package prescription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/platform/auth"
)

func newHandlerContext(t *testing.T, method, target, body string, id *auth.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if id != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), id))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate_Success(t *testing.T) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/prescriptions",
		`{"patientUsername":"asha01","medicines":["Paracetamol","Napa"],"notes":"After meals"}`,
		doctorKarim)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}
	p, ok := body["prescription"].(map[string]interface{})
	if !ok {
		t.Fatal("expected prescription in response")
	}
	meds, _ := p["medicines"].([]interface{})
	if len(meds) != 2 || meds[0] != "Paracetamol" || meds[1] != "Napa" {
		t.Errorf("medicines not returned as a structured list: %v", p["medicines"])
	}
}

func TestHandlerCreate_MissingPatientIs400(t *testing.T) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/prescriptions",
		`{"medicines":["Napa"]}`, doctorKarim)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlerCreate_PatientRoleIs403(t *testing.T) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/prescriptions",
		`{"patientUsername":"asha01","medicines":["Napa"]}`, patientAsha)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestHandlerList_EmptyIsArray(t *testing.T) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/prescriptions", "", patientAsha)
	if err := h.List(c); err != nil {
		t.Fatalf("List handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if _, ok := body["prescriptions"].([]interface{}); !ok {
		t.Errorf("expected prescriptions array, got %T", body["prescriptions"])
	}
}
