package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/internal/platform/validation"
	"github.com/carelink/carelink/pkg/apperr"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)
	e := echo.New()
	e.Validator = validation.New()
	return h, e
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
	h, e := newTestHandler()

	c, rec := newContext(e, http.MethodPost, `{"name":"Jane Doe","email":"jane@example.com"}`, 1)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Success bool    `json:"success"`
		Message string  `json:"message"`
		Data    Patient `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if !body.Success {
		t.Error("expected success true")
	}
	if body.Message != "Patient created successfully" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.Data.CreatedBy != 1 {
		t.Errorf("expected owner 1, got %d", body.Data.CreatedBy)
	}
}

func TestHandler_Create_ValidationFailure(t *testing.T) {
	h, e := newTestHandler()

	c, _ := newContext(e, http.MethodPost, `{"name":"J"}`, 1)
	err := h.Create(c)
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()

	c, _ := newContext(e, http.MethodGet, "", 1)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Get(c)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestHandler_Get_BadID(t *testing.T) {
	h, e := newTestHandler()

	c, _ := newContext(e, http.MethodGet, "", 1)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, e := newTestHandler()

	create, _ := newContext(e, http.MethodPost, `{"name":"Jane Doe"}`, 1)
	if err := h.Create(create); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := newContext(e, http.MethodGet, "", 1)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []Patient `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Data) != 1 {
		t.Errorf("expected 1 patient, got %d", len(body.Data))
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()

	create, createRec := newContext(e, http.MethodPost, `{"name":"Jane Doe"}`, 1)
	h.Create(create)
	var created struct {
		Data Patient `json:"data"`
	}
	json.Unmarshal(createRec.Body.Bytes(), &created)

	c, rec := newContext(e, http.MethodDelete, "", 1)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(created.Data.ID, 10))

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"data"`) {
		t.Error("expected no data field on delete")
	}
}
