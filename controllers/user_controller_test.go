package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/mdtoufiquea/Smart-dine-server/entity"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := newTestRouter(t)

	body := `{"email":"alice@example.com","name":"Alice"}`

	w := doJSON(t, r, http.MethodPost, "/users", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: got %d, want 201 (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/users", body)
	if w.Code != http.StatusOK {
		t.Fatalf("second register: got %d, want 200", w.Code)
	}
	if env := decode(t, w); env.Msg != "User already exists" {
		t.Errorf("second register msg = %q, want %q", env.Msg, "User already exists")
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", "alice@example.com").Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestGetUserByEmail(t *testing.T) {
	r, db := newTestRouter(t)

	db.Create(&entity.User{Email: "bob@example.com", Name: "Bob"})

	w := doJSON(t, r, http.MethodGet, "/users/bob@example.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	var user entity.User
	if err := json.Unmarshal(decode(t, w).Data, &user); err != nil {
		t.Fatal(err)
	}
	if user.Email != "bob@example.com" || user.Name != "Bob" {
		t.Errorf("unexpected user: %+v", user)
	}

	// unknown email is a 200 with null data, not an error
	w = doJSON(t, r, http.MethodGet, "/users/nobody@example.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unknown email: got %d, want 200", w.Code)
	}
	if data := string(decode(t, w).Data); data != "null" {
		t.Errorf("unknown email data = %s, want null", data)
	}
}

func TestUpdateRole(t *testing.T) {
	r, db := newTestRouter(t)

	u := entity.User{Email: "carol@example.com"}
	db.Create(&u)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/users/role/%d", u.ID), `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing role: got %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/users/role/%d", u.ID), `{"role":"admin"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update role: got %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var got entity.User
	db.First(&got, u.ID)
	if got.Role != "admin" {
		t.Errorf("role = %q, want %q", got.Role, "admin")
	}
}

func TestDeleteUser(t *testing.T) {
	r, db := newTestRouter(t)

	u := entity.User{Email: "dave@example.com"}
	db.Create(&u)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/users/%d", u.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}

	var count int64
	db.Model(&entity.User{}).Where("id = ?", u.ID).Count(&count)
	if count != 0 {
		t.Errorf("user still present after delete")
	}
}

func TestRegisterDefaultsRole(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", `{"email":"eve@example.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201", w.Code)
	}

	var got entity.User
	db.Where("email = ?", "eve@example.com").First(&got)
	if got.Role != "customer" {
		t.Errorf("role = %q, want %q", got.Role, "customer")
	}
}
