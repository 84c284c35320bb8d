package model

// ClassPeriod maps to the class_periods table. The lab owns its periods
// (cascade delete); the PC assignment is a weak reference. The time
// interval is half-open [period_start, period_end) on day_of_week with
// 0=Sunday through 6=Saturday.
type ClassPeriod struct {
	ClassPeriodID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_period_id"`
	LabID         string    `gorm:"type:uuid;not null"                             json:"lab_id"`
	PCID          *string   `gorm:"type:uuid"                                      json:"pc_id,omitempty"`
	Subject       string    `gorm:"type:varchar(255);not null"                     json:"subject"`
	InstructorID  *string   `gorm:"type:uuid"                                      json:"instructor_id,omitempty"`
	DayOfWeek     int       `gorm:"type:smallint;not null"                         json:"day_of_week"`
	PeriodStart   TimeOfDay `gorm:"type:time;not null"                             json:"period_start"`
	PeriodEnd     TimeOfDay `gorm:"type:time;not null"                             json:"period_end"`
	Recurring     bool      `gorm:"not null;default:true"                          json:"recurring"`
	BaseModel

	// associations
	Lab        *Lab  `gorm:"foreignKey:LabID;references:LabID"          json:"lab,omitempty"`
	PC         *PC   `gorm:"foreignKey:PCID;references:PCID"            json:"pc,omitempty"`
	Instructor *User `gorm:"foreignKey:InstructorID;references:UserID"  json:"instructor,omitempty"`
}

// TableName sets the table name.
func (ClassPeriod) TableName() string { return "class_periods" }
