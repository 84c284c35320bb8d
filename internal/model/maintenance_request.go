package model

import "time"

// Maintenance request priorities.
const (
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

// Maintenance request statuses.
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusClosed     = "closed"
)

// MaintenanceRequest maps to the maintenance_requests table. All user and
// PC references are weak.
type MaintenanceRequest struct {
	MaintenanceRequestID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"maintenance_request_id"`
	PCID                 *string    `gorm:"type:uuid"                                      json:"pc_id,omitempty"`
	RequestedBy          *string    `gorm:"type:uuid"                                      json:"requested_by,omitempty"`
	AssignedTo           *string    `gorm:"type:uuid"                                      json:"assigned_to,omitempty"`
	Title                string     `gorm:"type:varchar(255);not null"                     json:"title"`
	Description          *string    `gorm:"type:text"                                      json:"description,omitempty"`
	Priority             int        `gorm:"type:smallint;not null;default:2"               json:"priority"`
	Status               string     `gorm:"type:varchar(20);not null;default:'open'"       json:"status"`
	ResolvedAt           *time.Time `json:"resolved_at,omitempty"`
	BaseModel

	// associations
	PC        *PC   `gorm:"foreignKey:PCID;references:PCID"          json:"pc,omitempty"`
	Requester *User `gorm:"foreignKey:RequestedBy;references:UserID" json:"requester,omitempty"`
	Assignee  *User `gorm:"foreignKey:AssignedTo;references:UserID"  json:"assignee,omitempty"`
}

// TableName sets the table name.
func (MaintenanceRequest) TableName() string { return "maintenance_requests" }
