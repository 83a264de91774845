package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdtoufiquea/Smart-dine-server/entity"
)

func TestLoginAndMe(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users",
		`{"email":"sam@example.com","password":"s3cret!","name":"Sam"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"email":"sam@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: got %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"email":"sam@example.com","password":"s3cret!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d (%s)", w.Code, w.Body.String())
	}

	var login struct {
		Token string      `json:"token"`
		User  entity.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatal(err)
	}
	if login.Token == "" {
		t.Fatal("login returned no token")
	}
	if login.User.Role != "customer" {
		t.Errorf("role = %q, want customer", login.User.Role)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: got %d (%s)", rec.Code, rec.Body.String())
	}

	var me entity.User
	if err := json.Unmarshal(decode(t, rec).Data, &me); err != nil {
		t.Fatal(err)
	}
	if me.Email != "sam@example.com" {
		t.Errorf("me email = %q", me.Email)
	}
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/users",
		`{"email":"tess@example.com","password":"hunter2"}`)

	w := doJSON(t, r, http.MethodGet, "/users/tess@example.com", "")
	var raw map[string]any
	if err := json.Unmarshal(decode(t, w).Data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["password"]; ok {
		t.Error("password field present in JSON output")
	}
	if _, ok := raw["Password"]; ok {
		t.Error("Password field present in JSON output")
	}
}
