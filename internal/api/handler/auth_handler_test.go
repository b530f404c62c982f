package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

type stubAuthService struct {
	registerInput ports.RegisterInput
	registerID    int64
	registerErr   error

	loginEmail    string
	loginPassword string
	loginToken    string
	loginErr      error

	user *domain.User

	changedCurrent string
	changedNew     string
	changeErr      error

	deleted bool

	setup    ports.ProfileSetup
	setupErr error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (int64, error) {
	s.registerInput = input
	return s.registerID, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	s.loginEmail = email
	s.loginPassword = password
	return s.loginToken, s.loginErr
}

func (s *stubAuthService) ResolveIdentity(context.Context, string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrInvalidToken
	}
	return s.user, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _ *domain.User, current, newPassword string) error {
	s.changedCurrent = current
	s.changedNew = newPassword
	return s.changeErr
}

func (s *stubAuthService) DeleteAccount(context.Context, *domain.User) error {
	s.deleted = true
	return nil
}

func (s *stubAuthService) CompleteSetup(_ context.Context, _ *domain.User, setup ports.ProfileSetup) error {
	s.setup = setup
	return s.setupErr
}

func newTestContext(body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	auth := &stubAuthService{registerID: 42}
	h := NewAuthHandler(auth)

	body := `{"email":"alice@example.com","password":"hunter22","confirm_password":"hunter22","first_name":"Alice"}`
	c, rec := newTestContext(body, echo.MIMEApplicationJSON)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Msg != "User created" || resp.UserID != 42 {
		t.Errorf("response = %+v", resp)
	}
	if auth.registerInput.Email != "alice@example.com" || auth.registerInput.FirstName != "Alice" {
		t.Errorf("service received %+v", auth.registerInput)
	}
}

func TestRegisterHandlerRejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"hunter22","confirm_password":"hunter22"}`},
		{"short password", `{"email":"alice@example.com","password":"abc","confirm_password":"abc"}`},
		{"missing password", `{"email":"alice@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(tt.body, echo.MIMEApplicationJSON)

			err := h.Register(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Errorf("Register = %v, want 400 HTTPError", err)
			}
		})
	}
}

func TestRegisterHandlerPassesServiceErrorThrough(t *testing.T) {
	auth := &stubAuthService{registerErr: domain.ErrUserExists}
	h := NewAuthHandler(auth)

	body := `{"email":"alice@example.com","password":"hunter22","confirm_password":"hunter22"}`
	c, _ := newTestContext(body, echo.MIMEApplicationJSON)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("Register = %v, want ErrUserExists", err)
	}
}

func TestLoginHandlerAcceptsFormCredentials(t *testing.T) {
	auth := &stubAuthService{loginToken: "signed-token"}
	h := NewAuthHandler(auth)

	form := url.Values{"username": {"alice@example.com"}, "password": {"hunter22"}}
	c, rec := newTestContext(form.Encode(), echo.MIMEApplicationForm)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if auth.loginEmail != "alice@example.com" || auth.loginPassword != "hunter22" {
		t.Errorf("service received %q / %q", auth.loginEmail, auth.loginPassword)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Errorf("response = %+v", resp)
	}
}

func TestLoginHandlerPassesServiceErrorThrough(t *testing.T) {
	auth := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(auth)

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	c, _ := newTestContext(form.Encode(), echo.MIMEApplicationForm)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login = %v, want ErrInvalidCredentials", err)
	}
}

// invokeAuthed routes a request through the auth middleware so the handler
// sees a resolved user, matching the real route wiring.
func invokeAuthed(t *testing.T, auth ports.AuthService, handler echo.HandlerFunc, method, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer some-token")
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := middleware.Auth(auth)(handler)(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestMeHandler(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: 7, Email: "alice@example.com", SetupComplete: true}}
	h := NewAuthHandler(auth)

	rec := invokeAuthed(t, auth, h.Me, http.MethodGet, "", "")

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.ID != 7 || resp.Email != "alice@example.com" || !resp.SetupComplete {
		t.Errorf("response = %+v", resp)
	}
}

func TestChangePasswordHandler(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: 7}}
	h := NewAuthHandler(auth)

	body := `{"current_password":"old-pass","new_password":"new-pass"}`
	rec := invokeAuthed(t, auth, h.ChangePassword, http.MethodPost, body, echo.MIMEApplicationJSON)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if auth.changedCurrent != "old-pass" || auth.changedNew != "new-pass" {
		t.Errorf("service received %q / %q", auth.changedCurrent, auth.changedNew)
	}
}

func TestDeleteHandler(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: 7}}
	h := NewAuthHandler(auth)

	rec := invokeAuthed(t, auth, h.Delete, http.MethodDelete, "", "")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !auth.deleted {
		t.Error("DeleteAccount was not called")
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Msg != "Account deleted" {
		t.Errorf("msg = %q", resp.Msg)
	}
}

func TestSetupHandler(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: 7}}
	h := NewAuthHandler(auth)

	body := `{"monthly_income":4200,"goal":"save","fixed_expenses":{"rent":1200}}`
	rec := invokeAuthed(t, auth, h.Setup, http.MethodPut, body, echo.MIMEApplicationJSON)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if auth.setup.MonthlyIncome != 4200 || auth.setup.Goal != "save" {
		t.Errorf("service received %+v", auth.setup)
	}
	if auth.setup.FixedExpenses["rent"] != 1200 {
		t.Errorf("FixedExpenses = %v", auth.setup.FixedExpenses)
	}
}
