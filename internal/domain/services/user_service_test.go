package services

import (
	"strings"
	"testing"

	"github.com/endri-fradomos/local-api/internal/domain/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := openTestDB(t, allModels()...)
	svc := NewUserService(db, nil)

	user := &models.User{
		Username:     "endri",
		PasswordHash: "plaintext-password",
		Email:        "endri@fradomos.al",
	}
	if err := svc.CreateUser(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", stored.PasswordHash)
	}
	if !models.CheckPasswordHash("plaintext-password", stored.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	db := openTestDB(t, allModels()...)
	svc := NewUserService(db, nil)

	first := &models.User{Username: "endri", PasswordHash: "pw1", Email: "endri@fradomos.al"}
	if err := svc.CreateUser(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sameUsername := &models.User{Username: "endri", PasswordHash: "pw2", Email: "other@fradomos.al"}
	if err := svc.CreateUser(sameUsername); err == nil {
		t.Error("expected duplicate username to be rejected")
	}

	sameEmail := &models.User{Username: "other", PasswordHash: "pw3", Email: "endri@fradomos.al"}
	if err := svc.CreateUser(sameEmail); err == nil {
		t.Error("expected duplicate email to be rejected")
	}
}

func TestAuthenticate(t *testing.T) {
	db := openTestDB(t, allModels()...)
	svc := NewUserService(db, nil)

	user := &models.User{Username: "endri", PasswordHash: "correct-horse", Email: "endri@fradomos.al"}
	if err := svc.CreateUser(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Authenticate("endri", "correct-horse")
	if err != nil {
		t.Fatalf("expected successful authentication: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}

	// Wrong password and unknown user fail with the same error so the
	// response does not leak which usernames exist
	_, badPass := svc.Authenticate("endri", "wrong")
	_, noUser := svc.Authenticate("ghost", "wrong")
	if badPass == nil || noUser == nil {
		t.Fatal("expected both failures to produce errors")
	}
	if badPass.Error() != noUser.Error() {
		t.Errorf("expected identical errors, got %q and %q", badPass, noUser)
	}
}

func TestListUsersPaginates(t *testing.T) {
	db := openTestDB(t, allModels()...)
	svc := NewUserService(db, nil)

	for _, name := range []string{"alba", "besa", "cora"} {
		u := &models.User{Username: name, PasswordHash: "pw", Email: name + "@fradomos.al"}
		if err := svc.CreateUser(u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, page, err := svc.ListUsers(models.PaginationQuery{PageNum: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users on the first page, got %d", len(users))
	}
	if page.Total != 3 {
		t.Errorf("expected total 3, got %d", page.Total)
	}
	if users[0].Username != "alba" {
		t.Errorf("expected ascending order, got %q first", users[0].Username)
	}

	users, _, err = svc.ListUsers(models.PaginationQuery{PageNum: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].Username != "cora" {
		t.Errorf("expected only %q on the second page, got %+v", "cora", users)
	}

	users, _, err = svc.ListUsers(models.PaginationQuery{PageNum: 1, PageSize: 3, Desc: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users[0].Username != "cora" {
		t.Errorf("expected descending order, got %q first", users[0].Username)
	}
}
