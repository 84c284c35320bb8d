package model

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking maps to the bookings table. The PC, lab, and owner references
// are weak: deleting the target nulls the column, the booking survives.
// The interval is half-open [start_time, end_time).
type Booking struct {
	BookingID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	PCID      *string   `gorm:"type:uuid"                                      json:"pc_id,omitempty"`
	LabID     *string   `gorm:"type:uuid"                                      json:"lab_id,omitempty"`
	BookedBy  *string   `gorm:"type:uuid"                                      json:"booked_by,omitempty"`
	StartTime time.Time `gorm:"not null"                                       json:"start_time"`
	EndTime   time.Time `gorm:"not null"                                       json:"end_time"`
	Purpose   *string   `gorm:"type:text"                                      json:"purpose,omitempty"`
	Status    string    `gorm:"type:varchar(20);not null;default:'confirmed'"  json:"status"`
	BaseModel

	// associations
	PC    *PC   `gorm:"foreignKey:PCID;references:PCID"      json:"pc,omitempty"`
	Lab   *Lab  `gorm:"foreignKey:LabID;references:LabID"    json:"lab,omitempty"`
	Owner *User `gorm:"foreignKey:BookedBy;references:UserID" json:"owner,omitempty"`
}

// TableName sets the table name.
func (Booking) TableName() string { return "bookings" }
