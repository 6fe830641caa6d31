package services

import (
	"errors"
	"testing"
	"time"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database migrated with the given
// models. Leaving a model out simulates a structurally missing relation.
func openTestDB(t *testing.T, migrate ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(migrate...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Home{},
		&models.HomeMember{},
		&models.HomeInvite{},
		&models.Room{},
		&models.Device{},
		&models.AccessPermission{},
	}
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "secret123",
		Email:        email,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedHome(t *testing.T, db *gorm.DB, name string, ownerID uint) *models.Home {
	t.Helper()
	home := &models.Home{Name: name, OwnerID: ownerID}
	if err := db.Create(home).Error; err != nil {
		t.Fatalf("failed to seed home %s: %v", name, err)
	}
	return home
}

func TestResolveHomeAccessOwner(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	role, err := svc.ResolveHomeAccess(home.ID, owner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleAdmin {
		t.Errorf("expected RoleAdmin for owner, got %v", role)
	}
}

func TestResolveHomeAccessMember(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	member := &models.HomeMember{HomeID: home.ID, UserID: guest.ID, Role: "member"}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}

	role, err := svc.ResolveHomeAccess(home.ID, guest.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleMember {
		t.Errorf("expected RoleMember, got %v", role)
	}
}

func TestResolveHomeAccessStranger(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	stranger := seedUser(t, db, "stranger", "stranger@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	role, err := svc.ResolveHomeAccess(home.ID, stranger.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleNone {
		t.Errorf("expected RoleNone, got %v", role)
	}
}

func TestResolveHomeAccessMissingHome(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	user := seedUser(t, db, "owner", "owner@fradomos.al")

	_, err := svc.ResolveHomeAccess(999, user.ID)
	if !errors.Is(err, ErrHomeNotFound) {
		t.Errorf("expected ErrHomeNotFound, got %v", err)
	}
}

func TestResolveHomeAccessInviteFallback(t *testing.T) {
	// home_members is not migrated: the resolver must fall back to
	// accepted invites rather than failing.
	db := openTestDB(t,
		&models.User{},
		&models.Home{},
		&models.HomeInvite{},
		&models.Room{},
		&models.AccessPermission{},
	)
	caps := database.ProbeCapabilities(db)
	if caps.HomeMembers {
		t.Fatal("expected home_members to be absent in this scenario")
	}
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{
		HomeID:       home.ID,
		InvitedBy:    owner.ID,
		InviteeEmail: guest.Email,
		Role:         "member",
		Status:       models.InviteStatusAccepted,
	}
	if err := db.Create(invite).Error; err != nil {
		t.Fatalf("failed to seed invite: %v", err)
	}

	role, err := svc.ResolveHomeAccess(home.ID, guest.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleMember {
		t.Errorf("expected RoleMember via accepted invite, got %v", role)
	}

	// A pending invite must not grant access
	stranger := seedUser(t, db, "stranger", "stranger@fradomos.al")
	pending := &models.HomeInvite{
		HomeID:       home.ID,
		InvitedBy:    owner.ID,
		InviteeEmail: stranger.Email,
		Role:         "member",
		Status:       models.InviteStatusPending,
	}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("failed to seed pending invite: %v", err)
	}

	role, err = svc.ResolveHomeAccess(home.ID, stranger.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleNone {
		t.Errorf("expected RoleNone for pending invite, got %v", role)
	}
}

func TestVisibleRoomsAdminSeesAll(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	for _, name := range []string{"Living Room", "Kitchen", "Garage"} {
		if err := db.Create(&models.Room{HomeID: home.ID, Name: name}).Error; err != nil {
			t.Fatalf("failed to seed room %s: %v", name, err)
		}
	}

	rooms, err := svc.VisibleRooms(home.ID, owner.ID, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 3 {
		t.Errorf("expected 3 rooms for owner, got %v", rooms)
	}
}

func TestVisibleRoomsMemberWindowed(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	if err := db.Create(&models.HomeMember{HomeID: home.ID, UserID: guest.ID, Role: "member"}).Error; err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}
	for _, name := range []string{"Living Room", "Kitchen"} {
		if err := db.Create(&models.Room{HomeID: home.ID, Name: name}).Error; err != nil {
			t.Fatalf("failed to seed room %s: %v", name, err)
		}
	}

	// 2026-09-02 is a Wednesday
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	perms := []models.AccessPermission{
		{HomeID: home.ID, UserID: guest.ID, RoomName: "Living Room", DayOfWeek: 3, StartTime: "09:00:00", EndTime: "17:00:00"},
		{HomeID: home.ID, UserID: guest.ID, RoomName: "Kitchen", DayOfWeek: 3, StartTime: "18:00:00", EndTime: "20:00:00"},
	}
	for i := range perms {
		if err := db.Create(&perms[i]).Error; err != nil {
			t.Fatalf("failed to seed permission: %v", err)
		}
	}

	rooms, err := svc.VisibleRooms(home.ID, guest.ID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0] != "Living Room" {
		t.Errorf("expected [Living Room], got %v", rooms)
	}
}

func TestVisibleRoomsStrangerGetsEmpty(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	svc := NewAuthorizationService(db, caps)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	stranger := seedUser(t, db, "stranger", "stranger@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	if err := db.Create(&models.Room{HomeID: home.ID, Name: "Living Room"}).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}

	rooms, err := svc.VisibleRooms(home.ID, stranger.ID, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("expected no rooms for stranger, got %v", rooms)
	}
}
