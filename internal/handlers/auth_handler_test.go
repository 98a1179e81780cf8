package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"employee-admin/internal/models"
	"employee-admin/internal/service"
)

type fakeCreds struct {
	byName map[string]models.Credential
}

func (f *fakeCreds) GetByUserName(_ context.Context, userName string) (models.Credential, error) {
	cred, ok := f.byName[userName]
	if !ok {
		return models.Credential{}, models.ErrUserNotFound
	}
	return cred, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("hukum123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	creds := &fakeCreds{byName: map[string]models.Credential{
		"hukum": {Sno: 1, UserName: "hukum", PasswordHash: string(hash)},
	}}
	h := NewAuthHandler(service.NewAuthService(creds, "handler-test-secret"), nil)

	r := gin.New()
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	return r
}

func postLogin(r *gin.Engine, userName, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(models.LoginRequest{UserName: userName, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(r, "hukum", "hukum123")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.UserName != "hukum" {
		t.Fatalf("unexpected response %+v", resp)
	}

	token := cookieByName(w, "token")
	if token == nil || token.Value == "" {
		t.Fatal("token cookie not set")
	}
	if !token.HttpOnly {
		t.Fatal("token cookie must be HTTP-only")
	}
	if token.MaxAge != int(service.SessionTTL.Seconds()) {
		t.Fatalf("token MaxAge = %d, want %d", token.MaxAge, int(service.SessionTTL.Seconds()))
	}

	display := cookieByName(w, "userName")
	if display == nil || display.Value != "hukum" {
		t.Fatal("userName cookie not set")
	}
	if display.HttpOnly {
		t.Fatal("userName cookie is display-only, must be readable client-side")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(r, "nobody", "whatever")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if cookieByName(w, "token") != nil {
		t.Fatal("no cookie expected for failed login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(r, "hukum", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Incorrect password") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(r, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogoutClearsCookies(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	token := cookieByName(w, "token")
	if token == nil || token.MaxAge >= 0 {
		t.Fatal("token cookie not expired")
	}
}
