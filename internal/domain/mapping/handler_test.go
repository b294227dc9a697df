package mapping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/internal/platform/validation"
	"github.com/carelink/carelink/pkg/apperr"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()
	e.Validator = validation.New()
	return h, repo, e
}

func newContext(e *echo.Echo, method, body string, callerID int64) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	req = req.WithContext(auth.WithUserID(req.Context(), callerID))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Create(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.patientOwners[1] = 10
	repo.doctors[2] = true

	c, rec := newContext(e, http.MethodPost, `{"patient_id":1,"doctor_id":2,"notes":"primary care"}`, 10)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Message string  `json:"message"`
		Data    Mapping `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Doctor assigned to patient successfully" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.Data.Notes == nil || *body.Data.Notes != "primary care" {
		t.Errorf("expected notes to round-trip, got %+v", body.Data)
	}
}

func TestHandler_Create_MissingIDs(t *testing.T) {
	h, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodPost, `{"notes":"x"}`, 10)
	err := h.Create(c)
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestHandler_ListByPatient_BadParam(t *testing.T) {
	h, _, e := newTestHandler()

	c, _ := newContext(e, http.MethodGet, "", 10)
	c.SetParamNames("patient_id")
	c.SetParamValues("-3")

	err := h.ListByPatient(c)
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestHandler_Delete_NotOwner(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.patientOwners[1] = 10
	repo.doctors[2] = true

	create, _ := newContext(e, http.MethodPost, `{"patient_id":1,"doctor_id":2}`, 10)
	if err := h.Create(create); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := newContext(e, http.MethodDelete, "", 99)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Delete(c)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.patientOwners[1] = 10
	repo.doctors[2] = true

	create, _ := newContext(e, http.MethodPost, `{"patient_id":1,"doctor_id":2}`, 10)
	h.Create(create)

	c, rec := newContext(e, http.MethodDelete, "", 10)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Doctor removed from patient successfully") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
