package model

// Lab maps to the labs table. Deleting a lab cascades to its PCs and
// class periods at the database level.
type Lab struct {
	LabID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lab_id"`
	LabCode     *string `gorm:"type:varchar(50);uniqueIndex"                   json:"lab_code,omitempty"`
	Name        string  `gorm:"type:varchar(255);not null"                     json:"name"`
	Location    *string `gorm:"type:text"                                      json:"location,omitempty"`
	Description *string `gorm:"type:text"                                      json:"description,omitempty"`
	LabHeadID   *string `gorm:"type:uuid"                                      json:"lab_head_id,omitempty"`
	Fans        int     `gorm:"not null;default:0"                             json:"fans"`
	Lights      int     `gorm:"not null;default:0"                             json:"lights"`
	BaseModel

	// associations
	LabHead *User `gorm:"foreignKey:LabHeadID;references:UserID" json:"lab_head,omitempty"`
	PCs     []PC  `gorm:"foreignKey:LabID"                       json:"pcs,omitempty"`
}

// TableName sets the table name.
func (Lab) TableName() string { return "labs" }
