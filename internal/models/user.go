package models

// User is the login identity. Table name kept from the legacy schema.
type User struct {
	BaseModel
	Email        string `gorm:"column:user_email;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`

	// Relations
	Details           *UserDetails       `gorm:"foreignKey:UserID"`
	FreelancerDetails *FreelancerDetails `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "user_login" }
