package dto

// CreateClassPeriodRequest proposes a class period on a lab. The lab
// comes from the URL. Times are "HH:MM" time-of-day values forming the
// half-open interval [period_start, period_end).
type CreateClassPeriodRequest struct {
	PCID         *string `json:"pc_id"         binding:"omitempty,uuid"`
	Subject      string  `json:"subject"       binding:"required,max=255"`
	InstructorID *string `json:"instructor_id" binding:"omitempty,uuid"`
	DayOfWeek    *int    `json:"day_of_week"   binding:"required,min=0,max=6"`
	PeriodStart  string  `json:"period_start"  binding:"required,datetime=15:04"`
	PeriodEnd    string  `json:"period_end"    binding:"required,datetime=15:04"`
	Recurring    *bool   `json:"recurring"`
}

// ClassPeriodListRequest filters a lab's period list.
type ClassPeriodListRequest struct {
	DayOfWeek *int `form:"day_of_week" binding:"omitempty,min=0,max=6"`
}

// ClassPeriodResponse is the class period representation.
type ClassPeriodResponse struct {
	ID          string     `json:"id"`
	Lab         *LabBrief  `json:"lab,omitempty"`
	PC          *PCBrief   `json:"pc,omitempty"`
	Subject     string     `json:"subject"`
	Instructor  *UserBrief `json:"instructor,omitempty"`
	DayOfWeek   int        `json:"day_of_week"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	Recurring   bool       `json:"recurring"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// PCAvailabilityResponse reports one PC's availability during a period.
type PCAvailabilityResponse struct {
	PC          PCBrief `json:"pc"`
	IsAvailable bool    `json:"is_available"`
}
