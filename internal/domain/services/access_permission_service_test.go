package services

import (
	"testing"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"
)

func TestListPermissionsFilters(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAccessPermissionService(db, nil, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)
	other := seedHome(t, db, "Beach House", owner.ID)

	perms := []models.AccessPermission{
		{HomeID: home.ID, UserID: guest.ID, RoomName: "Living Room", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00:00"},
		{HomeID: home.ID, UserID: owner.ID, RoomName: "Kitchen", DayOfWeek: 2, StartTime: "09:00:00", EndTime: "17:00:00"},
		{HomeID: other.ID, UserID: guest.ID, RoomName: "Deck", DayOfWeek: 3, StartTime: "09:00:00", EndTime: "17:00:00"},
	}
	for i := range perms {
		if err := svc.CreatePermission(&perms[i]); err != nil {
			t.Fatalf("failed to seed permission: %v", err)
		}
	}

	all, err := svc.ListPermissions(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 permissions, got %d", len(all))
	}

	byUser, err := svc.ListPermissions(&guest.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("expected 2 permissions for guest, got %d", len(byUser))
	}

	byBoth, err := svc.ListPermissions(&guest.ID, &home.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byBoth) != 1 || byBoth[0].RoomName != "Living Room" {
		t.Errorf("expected only the Living Room permission, got %v", byBoth)
	}
}

func TestPermissionWritesRequireRelation(t *testing.T) {
	// access_permissions is not migrated: writes must fail with a schema
	// error carrying remediation DDL instead of a raw driver error.
	db := openTestDB(t, &models.User{}, &models.Home{}, &models.HomeMember{}, &models.HomeInvite{}, &models.Room{})
	caps := database.ProbeCapabilities(db)
	if caps.AccessPermissions {
		t.Fatal("expected access_permissions to be absent in this scenario")
	}
	svc := NewAccessPermissionService(db, nil, caps)

	perm := &models.AccessPermission{HomeID: 1, UserID: 1, RoomName: "Living Room", StartTime: "09:00:00", EndTime: "17:00:00"}
	err := svc.CreatePermission(perm)
	if err == nil {
		t.Fatal("expected an error for a missing relation")
	}

	schemaErr, ok := AsSchemaMissing(err)
	if !ok {
		t.Fatalf("expected a schema missing error, got %v", err)
	}
	if schemaErr.Table != database.TableAccessPermissions {
		t.Errorf("expected table %s, got %s", database.TableAccessPermissions, schemaErr.Table)
	}
	if schemaErr.SuggestedDDL() == "" {
		t.Error("expected remediation DDL to be suggested")
	}
}

func TestUpdatePermissionNotFound(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAccessPermissionService(db, nil, caps)

	perm := &models.AccessPermission{HomeID: 1, UserID: 1, RoomName: "Living Room", StartTime: "09:00:00", EndTime: "17:00:00"}
	if err := svc.UpdatePermission(999, perm); err == nil {
		t.Error("expected updating a missing permission to fail")
	}
}
