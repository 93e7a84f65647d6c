package echo

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

var validate = validator.New()

type listGraduatesQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1,max=1000000"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"max=100"`
}

// updateGraduateRequest is a partial edit; absent JSON fields stay nil.
type updateGraduateRequest struct {
	NuID               *string  `json:"nuId"`
	NuEmail            *string  `json:"nuEmail"`
	FullName           *string  `json:"fullName" validate:"omitempty,min=1,max=200"`
	Discipline         *string  `json:"discipline" validate:"omitempty,min=1,max=200"`
	YearOfGraduation   *int     `json:"yearOfGraduation" validate:"omitempty,min=1950,max=2100"`
	CGPA               *float64 `json:"cgpa" validate:"omitempty,min=0,max=4"`
	PersonalEmail      *string  `json:"personalEmail" validate:"omitempty,email"`
	ProfilePic         *string  `json:"profilePic" validate:"omitempty,url"`
	Contact            *string  `json:"contact" validate:"omitempty,max=50"`
	Tagline            *string  `json:"tagline" validate:"omitempty,max=200"`
	PersonalExperience *string  `json:"personalExperience" validate:"omitempty,max=5000"`
	Certificate        *string  `json:"certificate" validate:"omitempty,max=2000"`
	FYP                *string  `json:"fyp" validate:"omitempty,max=2000"`
}

// Ok returns field errors keyed by JSON field name.
func (r *updateGraduateRequest) Ok() (map[string]string, bool) {
	errorMessages := map[string]string{}
	if r.NuID != nil {
		errorMessages["nuId"] = "nuId cannot be changed"
	}
	if r.NuEmail != nil {
		errorMessages["nuEmail"] = "nuEmail cannot be changed"
	}

	for field, message := range fieldErrors(validate.Struct(r)) {
		errorMessages[field] = message
	}
	return errorMessages, len(errorMessages) == 0
}

func (q *listGraduatesQuery) Ok() (map[string]string, bool) {
	errorMessages := fieldErrors(validate.Struct(q))
	return errorMessages, len(errorMessages) == 0
}

func fieldErrors(err error) map[string]string {
	errorMessages := map[string]string{}
	if err == nil {
		return errorMessages
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorMessages["body"] = err.Error()
		return errorMessages
	}
	for _, fe := range validationErrors {
		errorMessages[jsonFieldNames[fe.Field()]] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
	return errorMessages
}

func (r *updateGraduateRequest) toPatch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FullName:           r.FullName,
		Discipline:         r.Discipline,
		YearOfGraduation:   r.YearOfGraduation,
		CGPA:               r.CGPA,
		PersonalEmail:      r.PersonalEmail,
		ProfilePic:         r.ProfilePic,
		Contact:            r.Contact,
		Tagline:            r.Tagline,
		PersonalExperience: r.PersonalExperience,
		Certificate:        r.Certificate,
		FYP:                r.FYP,
	}
}

var jsonFieldNames = map[string]string{
	"FullName":           "fullName",
	"Discipline":         "discipline",
	"YearOfGraduation":   "yearOfGraduation",
	"CGPA":               "cgpa",
	"PersonalEmail":      "personalEmail",
	"ProfilePic":         "profilePic",
	"Contact":            "contact",
	"Tagline":            "tagline",
	"PersonalExperience": "personalExperience",
	"Certificate":        "certificate",
	"FYP":                "fyp",
	"Page":               "page",
	"Limit":              "limit",
	"Search":             "search",
}
