package dto

// CreateMaintenanceRequest opens a maintenance request.
type CreateMaintenanceRequest struct {
	PCID        *string `json:"pc_id"       binding:"omitempty,uuid"`
	Title       string  `json:"title"       binding:"required,max=255"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"    binding:"omitempty,min=1,max=3"`
}

// UpdateMaintenanceRequest reassigns or transitions a request.
type UpdateMaintenanceRequest struct {
	AssignedTo  *string `json:"assigned_to" binding:"omitempty,uuid"`
	Priority    *int    `json:"priority"    binding:"omitempty,min=1,max=3"`
	Status      *string `json:"status"      binding:"omitempty,oneof=open in_progress closed"`
	Description *string `json:"description"`
}

// MaintenanceListRequest filters the maintenance request list.
type MaintenanceListRequest struct {
	PaginationRequest
	PCID   string `form:"pc_id"  binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=open in_progress closed"`
}

// MaintenanceResponse is the maintenance request representation.
type MaintenanceResponse struct {
	ID          string     `json:"id"`
	PC          *PCBrief   `json:"pc,omitempty"`
	Requester   *UserBrief `json:"requester,omitempty"`
	Assignee    *UserBrief `json:"assignee,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	ResolvedAt  *string    `json:"resolved_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}
