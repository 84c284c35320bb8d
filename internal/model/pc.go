package model

import "time"

// PC maps to the pcs table. A PC belongs to exactly one lab.
type PC struct {
	PCID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pc_id"`
	LabID           string     `gorm:"type:uuid;not null"                             json:"lab_id"`
	AssetTag        *string    `gorm:"type:varchar(100);uniqueIndex"                  json:"asset_tag,omitempty"`
	Hostname        *string    `gorm:"type:varchar(150)"                              json:"hostname,omitempty"`
	SerialNumber    *string    `gorm:"type:varchar(150)"                              json:"serial_number,omitempty"`
	IPAddress       *string    `gorm:"type:inet"                                      json:"ip_address,omitempty"`
	MACAddress      *string    `gorm:"type:varchar(32)"                               json:"mac_address,omitempty"`
	Manufacturer    *string    `gorm:"type:varchar(100)"                              json:"manufacturer,omitempty"`
	Model           *string    `gorm:"type:varchar(100)"                              json:"model,omitempty"`
	CPU             *string    `gorm:"type:varchar(200)"                              json:"cpu,omitempty"`
	CPUCores        *int       `json:"cpu_cores,omitempty"`
	RAMMB           *int       `gorm:"column:ram_mb"                                  json:"ram_mb,omitempty"`
	StorageGB       *int       `gorm:"column:storage_gb"                              json:"storage_gb,omitempty"`
	OSName          *string    `gorm:"type:varchar(100)"                              json:"os_name,omitempty"`
	OSVersion       *string    `gorm:"type:varchar(100)"                              json:"os_version,omitempty"`
	PurchasedOn     *time.Time `gorm:"type:date"                                      json:"purchased_on,omitempty"`
	WarrantyUntil   *time.Time `gorm:"type:date"                                      json:"warranty_until,omitempty"`
	IsDefective     bool       `gorm:"not null;default:false"                         json:"is_defective"`
	DefectiveReason *string    `gorm:"type:text"                                      json:"defective_reason,omitempty"`
	LastCheckedAt   *time.Time `json:"last_checked_at,omitempty"`
	BaseModel

	// associations
	Lab *Lab `gorm:"foreignKey:LabID;references:LabID" json:"lab,omitempty"`
}

// TableName sets the table name.
func (PC) TableName() string { return "pcs" }
