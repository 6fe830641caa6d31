package services

import (
	"testing"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

func newInviteFixture(t *testing.T) (*gorm.DB, InterfaceHomeInviteService) {
	t.Helper()
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	members := NewHomeMemberService(db, nil, caps)
	return db, NewHomeInviteService(db, nil, caps, members)
}

func TestCreateInviteForcesPending(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{
		HomeID:       home.ID,
		InvitedBy:    owner.ID,
		InviteeEmail: "guest@fradomos.al",
		Status:       models.InviteStatusAccepted,
	}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invite.Status != models.InviteStatusPending {
		t.Errorf("expected new invite to be pending, got %s", invite.Status)
	}
	if invite.Role != "member" {
		t.Errorf("expected default role member, got %s", invite.Role)
	}
}

func TestAcceptInviteCreatesMembership(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{HomeID: home.ID, InvitedBy: owner.ID, InviteeEmail: guest.Email}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateInviteStatus(invite.ID, models.InviteStatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.InviteStatusAccepted {
		t.Errorf("expected accepted, got %s", updated.Status)
	}

	var count int64
	db.Model(&models.HomeMember{}).Where("home_id = ? AND user_id = ?", home.ID, guest.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one membership row, got %d", count)
	}
}

func TestAcceptInviteIsIdempotent(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{HomeID: home.ID, InvitedBy: owner.ID, InviteeEmail: guest.Email}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Accepting twice must neither fail nor duplicate the membership
	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateInviteStatus(invite.ID, models.InviteStatusAccepted); err != nil {
			t.Fatalf("accept attempt %d failed: %v", i+1, err)
		}
	}

	var count int64
	db.Model(&models.HomeMember{}).Where("home_id = ? AND user_id = ?", home.ID, guest.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one membership row after re-accept, got %d", count)
	}
}

func TestAcceptInviteWithoutAccountStandsAlone(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{HomeID: home.ID, InvitedBy: owner.ID, InviteeEmail: "nobody@fradomos.al"}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateInviteStatus(invite.ID, models.InviteStatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.InviteStatusAccepted {
		t.Errorf("expected accepted, got %s", updated.Status)
	}

	var count int64
	db.Model(&models.HomeMember{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no membership rows for unregistered invitee, got %d", count)
	}
}

func TestDeclineInviteDeletesRow(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	guest := seedUser(t, db, "guest", "guest@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{HomeID: home.ID, InvitedBy: owner.ID, InviteeEmail: guest.Email}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateInviteStatus(invite.ID, models.InviteStatusDeclined); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	db.Model(&models.HomeInvite{}).Count(&count)
	if count != 0 {
		t.Errorf("expected invite row to be removed, got %d remaining", count)
	}
	var members int64
	db.Model(&models.HomeMember{}).Count(&members)
	if members != 0 {
		t.Errorf("expected no membership rows, got %d", members)
	}
}

func TestUpdateInviteStatusRejectsUnknown(t *testing.T) {
	db, svc := newInviteFixture(t)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)

	invite := &models.HomeInvite{HomeID: home.ID, InvitedBy: owner.ID, InviteeEmail: "guest@fradomos.al"}
	if err := svc.CreateInvite(invite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateInviteStatus(invite.ID, models.InviteStatus("revoked")); err == nil {
		t.Error("expected an error for an unknown status")
	}
}
