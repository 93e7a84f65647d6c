package models

import "time"

// Unique index names are referenced by the bulk inserter to classify collisions.
const (
	GraduateNuIDIndex    = "graduates_nu_id_key"
	GraduateNuEmailIndex = "graduates_nu_email_key"
)

type Graduate struct {
	ID                 string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	NuID               string  `gorm:"column:nu_id;size:64;not null;uniqueIndex:graduates_nu_id_key"`
	FullName           string  `gorm:"column:full_name;size:255;not null;index"`
	NuEmail            string  `gorm:"column:nu_email;size:320;not null;uniqueIndex:graduates_nu_email_key"`
	Discipline         string  `gorm:"column:discipline;size:255;not null"`
	YearOfGraduation   int     `gorm:"column:year_of_graduation;not null"`
	CGPA               float64 `gorm:"column:cgpa;not null"`
	PersonalEmail      string  `gorm:"column:personal_email;size:320;not null;default:''"`
	ProfilePic         string  `gorm:"column:profile_pic;type:text;not null;default:''"`
	Contact            string  `gorm:"column:contact;size:64;not null;default:''"`
	Tagline            string  `gorm:"column:tagline;size:255;not null;default:''"`
	PersonalExperience string  `gorm:"column:personal_experience;type:text;not null;default:''"`
	Certificate        string  `gorm:"column:certificate;type:text;not null;default:''"`
	FYP                string  `gorm:"column:fyp;type:text;not null;default:''"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Graduate) TableName() string {
	return "graduates"
}
