package dto

import "time"

// CreateBookingRequest proposes a booking on a PC and/or a whole lab over
// the half-open interval [start_time, end_time).
type CreateBookingRequest struct {
	PCID      *string   `json:"pc_id"      binding:"omitempty,uuid"`
	LabID     *string   `json:"lab_id"     binding:"omitempty,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
	Purpose   *string   `json:"purpose"`
}

// BookingListRequest filters the booking list.
type BookingListRequest struct {
	PaginationRequest
	PCID   string `form:"pc_id"  binding:"omitempty,uuid"`
	LabID  string `form:"lab_id" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// BookingResponse is the booking representation.
type BookingResponse struct {
	ID        string     `json:"id"`
	PC        *PCBrief   `json:"pc,omitempty"`
	Lab       *LabBrief  `json:"lab,omitempty"`
	Owner     *UserBrief `json:"owner,omitempty"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Purpose   *string    `json:"purpose,omitempty"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}
