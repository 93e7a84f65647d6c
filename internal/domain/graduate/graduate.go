package graduate

import (
	"strings"
	"time"
)

type Graduate struct {
	ID                 string
	NuID               string
	FullName           string
	NuEmail            string
	Discipline         string
	YearOfGraduation   int
	CGPA               float64
	PersonalEmail      string
	ProfilePic         string
	Contact            string
	Tagline            string
	PersonalExperience string
	Certificate        string
	FYP                string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NormalizeKey lowercases and trims a unique identifier (nuId, nuEmail).
func NormalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ProfilePatch carries the fields of a partial graduate edit. Nil means untouched.
type ProfilePatch struct {
	FullName           *string
	Discipline         *string
	YearOfGraduation   *int
	CGPA               *float64
	PersonalEmail      *string
	ProfilePic         *string
	Contact            *string
	Tagline            *string
	PersonalExperience *string
	Certificate        *string
	FYP                *string
}

func (p ProfilePatch) IsEmpty() bool {
	return p.FullName == nil && p.Discipline == nil && p.YearOfGraduation == nil && p.CGPA == nil &&
		p.PersonalEmail == nil && p.ProfilePic == nil && p.Contact == nil && p.Tagline == nil &&
		p.PersonalExperience == nil && p.Certificate == nil && p.FYP == nil
}

// TouchesAdminFields reports whether the patch edits fields reserved to administrators.
func (p ProfilePatch) TouchesAdminFields() bool {
	return p.FullName != nil || p.Discipline != nil || p.YearOfGraduation != nil || p.CGPA != nil
}

// Apply copies every set field of the patch onto g.
func (p ProfilePatch) Apply(g *Graduate) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&g.FullName, p.FullName)
	setString(&g.Discipline, p.Discipline)
	setString(&g.PersonalEmail, p.PersonalEmail)
	setString(&g.ProfilePic, p.ProfilePic)
	setString(&g.Contact, p.Contact)
	setString(&g.Tagline, p.Tagline)
	setString(&g.PersonalExperience, p.PersonalExperience)
	setString(&g.Certificate, p.Certificate)
	setString(&g.FYP, p.FYP)
	if p.YearOfGraduation != nil {
		g.YearOfGraduation = *p.YearOfGraduation
	}
	if p.CGPA != nil {
		g.CGPA = *p.CGPA
	}
}

type ListFilter struct {
	Page   int
	Limit  int
	Search string
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Page struct {
	Items []Graduate
	Total int64
}
