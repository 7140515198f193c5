package models

import (
	"gorm.io/datatypes"
)

const (
	AuditActionAssignHouse  = "occupancy.assign"
	AuditActionEndContract  = "occupancy.end"
	AuditActionDeleteRecord = "occupancy.delete"
)

// AuditLog records a domain-level write. Rows are inserted inside the same
// transaction as the change they describe, so the trail is exact.
type AuditLog struct {
	BaseRecordModel
	Action   string         `gorm:"type:varchar(50);not null;index" json:"action"`
	Entity   string         `gorm:"type:varchar(50);not null"       json:"entity"`
	EntityID int            `gorm:"not null"                        json:"entityId"`
	Detail   datatypes.JSON `gorm:"type:jsonb"                      json:"detail,omitempty"`
}
