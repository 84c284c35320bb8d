package model

// User roles.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// User maps to the users table.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string  `gorm:"type:varchar(150);not null;uniqueIndex"         json:"username"`
	Email        string  `gorm:"type:varchar(254);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	FullName     *string `gorm:"type:varchar(255)"                              json:"full_name,omitempty"`
	Phone        *string `gorm:"type:varchar(32)"                               json:"phone,omitempty"`
	Role         string  `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
