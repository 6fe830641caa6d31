package database

import (
	"gorm.io/gorm"
)

// Optional relation names. The core schema (users, homes, rooms, devices) is
// required; these three may be missing on partially migrated installations.
const (
	TableHomeMembers       = "home_members"
	TableHomeInvites       = "home_invites"
	TableAccessPermissions = "access_permissions"
)

// SchemaCapabilities records which optional relations exist. It is probed once
// at startup and treated as immutable afterwards; readers degrade to fewer
// privileges when a relation is absent instead of rediscovering it per request
// through failed queries.
type SchemaCapabilities struct {
	HomeMembers       bool
	HomeInvites       bool
	AccessPermissions bool
}

// ProbeCapabilities checks the optional relations against the live schema
func ProbeCapabilities(db *gorm.DB) SchemaCapabilities {
	m := db.Migrator()
	return SchemaCapabilities{
		HomeMembers:       m.HasTable(TableHomeMembers),
		HomeInvites:       m.HasTable(TableHomeInvites),
		AccessPermissions: m.HasTable(TableAccessPermissions),
	}
}

// suggestedDDL maps each optional relation to a create statement the operator
// can run to complete the schema. Returned in the remediation payload when a
// write hits a missing relation.
var suggestedDDL = map[string]string{
	TableHomeMembers: "CREATE TABLE home_members (" +
		"home_id BIGINT UNSIGNED NOT NULL, " +
		"user_id BIGINT UNSIGNED NOT NULL, " +
		"role VARCHAR(20) NOT NULL DEFAULT 'member', " +
		"created_at DATETIME, updated_at DATETIME, " +
		"PRIMARY KEY (home_id, user_id))",
	TableHomeInvites: "CREATE TABLE home_invites (" +
		"id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY, " +
		"home_id BIGINT UNSIGNED NOT NULL, " +
		"invited_by BIGINT UNSIGNED NOT NULL, " +
		"invitee_email VARCHAR(100) NOT NULL, " +
		"role VARCHAR(20) NOT NULL DEFAULT 'member', " +
		"status VARCHAR(20) NOT NULL DEFAULT 'pending', " +
		"created_at DATETIME, updated_at DATETIME)",
	TableAccessPermissions: "CREATE TABLE access_permissions (" +
		"id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY, " +
		"home_id BIGINT UNSIGNED NOT NULL, " +
		"user_id BIGINT UNSIGNED NOT NULL, " +
		"room_name VARCHAR(100) NOT NULL, " +
		"day_of_week TINYINT NOT NULL, " +
		"start_time TIME NOT NULL, " +
		"end_time TIME NOT NULL, " +
		"created_at DATETIME, updated_at DATETIME)",
}

// SuggestedDDL returns the schema-creation statement for an optional relation
func SuggestedDDL(table string) string {
	return suggestedDDL[table]
}
