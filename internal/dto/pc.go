package dto

// CreatePCRequest registers a PC in a lab. The lab comes from the URL.
type CreatePCRequest struct {
	AssetTag      *string `json:"asset_tag"      binding:"omitempty,max=100"`
	Hostname      *string `json:"hostname"       binding:"omitempty,max=150"`
	SerialNumber  *string `json:"serial_number"  binding:"omitempty,max=150"`
	IPAddress     *string `json:"ip_address"     binding:"omitempty,ip"`
	MACAddress    *string `json:"mac_address"    binding:"omitempty,mac"`
	Manufacturer  *string `json:"manufacturer"   binding:"omitempty,max=100"`
	Model         *string `json:"model"          binding:"omitempty,max=100"`
	CPU           *string `json:"cpu"            binding:"omitempty,max=200"`
	CPUCores      *int    `json:"cpu_cores"      binding:"omitempty,min=1"`
	RAMMB         *int    `json:"ram_mb"         binding:"omitempty,min=1"`
	StorageGB     *int    `json:"storage_gb"     binding:"omitempty,min=1"`
	OSName        *string `json:"os_name"        binding:"omitempty,max=100"`
	OSVersion     *string `json:"os_version"     binding:"omitempty,max=100"`
	PurchasedOn   *string `json:"purchased_on"   binding:"omitempty,datetime=2006-01-02"`
	WarrantyUntil *string `json:"warranty_until" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePCRequest partially updates a PC, including the defect flag.
type UpdatePCRequest struct {
	AssetTag        *string `json:"asset_tag"        binding:"omitempty,max=100"`
	Hostname        *string `json:"hostname"         binding:"omitempty,max=150"`
	IPAddress       *string `json:"ip_address"       binding:"omitempty,ip"`
	MACAddress      *string `json:"mac_address"      binding:"omitempty,mac"`
	OSName          *string `json:"os_name"          binding:"omitempty,max=100"`
	OSVersion       *string `json:"os_version"       binding:"omitempty,max=100"`
	IsDefective     *bool   `json:"is_defective"`
	DefectiveReason *string `json:"defective_reason"`
}

// PCResponse is the PC representation.
type PCResponse struct {
	ID              string    `json:"id"`
	Lab             *LabBrief `json:"lab,omitempty"`
	AssetTag        *string   `json:"asset_tag,omitempty"`
	Hostname        *string   `json:"hostname,omitempty"`
	SerialNumber    *string   `json:"serial_number,omitempty"`
	IPAddress       *string   `json:"ip_address,omitempty"`
	MACAddress      *string   `json:"mac_address,omitempty"`
	Manufacturer    *string   `json:"manufacturer,omitempty"`
	Model           *string   `json:"model,omitempty"`
	CPU             *string   `json:"cpu,omitempty"`
	CPUCores        *int      `json:"cpu_cores,omitempty"`
	RAMMB           *int      `json:"ram_mb,omitempty"`
	StorageGB       *int      `json:"storage_gb,omitempty"`
	OSName          *string   `json:"os_name,omitempty"`
	OSVersion       *string   `json:"os_version,omitempty"`
	IsDefective     bool      `json:"is_defective"`
	DefectiveReason *string   `json:"defective_reason,omitempty"`
	LastCheckedAt   *string   `json:"last_checked_at,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// PCBrief is embedded in booking and period responses.
type PCBrief struct {
	ID       string  `json:"id"`
	Hostname *string `json:"hostname,omitempty"`
	AssetTag *string `json:"asset_tag,omitempty"`
}
