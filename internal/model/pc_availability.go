package model

import "time"

// PCAvailability links a PC to a class period with an availability flag.
// Rows are recomputed whenever a class period's PC assignment changes and
// cascade-deleted with either parent. (pc_id, class_period_id) is unique.
type PCAvailability struct {
	PCAvailabilityID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pc_availability_id"`
	PCID             string    `gorm:"type:uuid;not null;uniqueIndex:uq_pc_availability" json:"pc_id"`
	ClassPeriodID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_pc_availability" json:"class_period_id"`
	IsAvailable      bool      `gorm:"not null;default:false"                         json:"is_available"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// associations
	PC          *PC          `gorm:"foreignKey:PCID;references:PCID"                   json:"pc,omitempty"`
	ClassPeriod *ClassPeriod `gorm:"foreignKey:ClassPeriodID;references:ClassPeriodID" json:"class_period,omitempty"`
}

// TableName sets the table name.
func (PCAvailability) TableName() string { return "pc_availabilities" }
