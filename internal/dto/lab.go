package dto

// CreateLabRequest creates a lab.
type CreateLabRequest struct {
	LabCode     *string `json:"lab_code"    binding:"omitempty,max=50"`
	Name        string  `json:"name"        binding:"required,max=255"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	LabHeadID   *string `json:"lab_head_id" binding:"omitempty,uuid"`
	Fans        int     `json:"fans"        binding:"omitempty,min=0"`
	Lights      int     `json:"lights"      binding:"omitempty,min=0"`
}

// UpdateLabRequest partially updates a lab.
type UpdateLabRequest struct {
	LabCode     *string `json:"lab_code"    binding:"omitempty,max=50"`
	Name        *string `json:"name"        binding:"omitempty,max=255"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	LabHeadID   *string `json:"lab_head_id" binding:"omitempty,uuid"`
	Fans        *int    `json:"fans"        binding:"omitempty,min=0"`
	Lights      *int    `json:"lights"      binding:"omitempty,min=0"`
}

// LabResponse is the lab representation.
type LabResponse struct {
	ID          string     `json:"id"`
	LabCode     *string    `json:"lab_code,omitempty"`
	Name        string     `json:"name"`
	Location    *string    `json:"location,omitempty"`
	Description *string    `json:"description,omitempty"`
	LabHead     *UserBrief `json:"lab_head,omitempty"`
	Fans        int        `json:"fans"`
	Lights      int        `json:"lights"`
	PCCount     int        `json:"pc_count"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// LabBrief is embedded in other resources' responses.
type LabBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
