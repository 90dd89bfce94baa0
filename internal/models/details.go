package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// CompanyEntry is one element of the JSON-encoded companies list. The
// application layer only ever stores a single entry built from the
// profile's companyName/location pair, but the column keeps the
// list shape of the legacy schema.
type CompanyEntry struct {
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
}

// SkillEntry is one element of the JSON-encoded skill list.
type SkillEntry struct {
	Skills     string `json:"skills"`
	Experience int    `json:"experience"`
}

// UserDetails holds the role and shared profile attributes of an account.
// The row is allocated empty at registration and nulled, never deleted.
type UserDetails struct {
	BaseModel
	UserID           uint           `gorm:"uniqueIndex;not null"`
	Name             *string        `gorm:"type:varchar(255)"`
	Age              *int
	Role             *UserRole      `gorm:"type:varchar(20)"`
	CompanyName      *string        `gorm:"type:varchar(255)"`
	Location         *string        `gorm:"type:varchar(255)"`
	Companies        datatypes.JSON `gorm:"type:json"`
	DetailsCompleted bool           `gorm:"default:false"`
}

func (UserDetails) TableName() string { return "user_details" }

// GetCompanies decodes the companies column. A missing or corrupt value
// yields an empty list, never an error: partially populated legacy rows
// must not break the read path.
func (d *UserDetails) GetCompanies() []CompanyEntry {
	var companies []CompanyEntry
	if len(d.Companies) > 0 {
		if err := json.Unmarshal(d.Companies, &companies); err != nil {
			return []CompanyEntry{}
		}
	}
	if companies == nil {
		companies = []CompanyEntry{}
	}
	return companies
}

func (d *UserDetails) SetCompanies(companies []CompanyEntry) {
	if companies == nil {
		companies = []CompanyEntry{}
	}
	data, _ := json.Marshal(companies)
	d.Companies = datatypes.JSON(data)
}

// FreelancerDetails holds the freelancer-specific attributes of an account.
// Allocated at registration for every account regardless of role, matching
// the legacy schema.
type FreelancerDetails struct {
	BaseModel
	UserID     uint           `gorm:"uniqueIndex;not null"`
	Name       *string        `gorm:"type:varchar(255)"`
	Skills     datatypes.JSON `gorm:"column:skills_json;type:json"`
	Experience *int
}

func (FreelancerDetails) TableName() string { return "freelancer_details" }

// GetSkills decodes the skills column with the same lenience as
// UserDetails.GetCompanies.
func (f *FreelancerDetails) GetSkills() []SkillEntry {
	var skills []SkillEntry
	if len(f.Skills) > 0 {
		if err := json.Unmarshal(f.Skills, &skills); err != nil {
			return []SkillEntry{}
		}
	}
	if skills == nil {
		skills = []SkillEntry{}
	}
	return skills
}

func (f *FreelancerDetails) SetSkills(skills []SkillEntry) {
	if skills == nil {
		skills = []SkillEntry{}
	}
	data, _ := json.Marshal(skills)
	f.Skills = datatypes.JSON(data)
}
