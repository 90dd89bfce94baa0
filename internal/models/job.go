package models

// JobPost is a company's advertised opening. CompanyID references the
// owning account (user_login.id); role is not re-checked at write time.
type JobPost struct {
	BaseModel
	CompanyID   uint    `gorm:"index;not null"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text;not null"`
	Location    *string `gorm:"type:varchar(255)"`
}

func (JobPost) TableName() string { return "job_posts" }
