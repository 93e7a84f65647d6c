package graduate

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

type GetGraduateInput struct {
	ID string
}

type GraduateOutput struct {
	ID                 string    `json:"id"`
	NuID               string    `json:"nuId"`
	FullName           string    `json:"fullName"`
	NuEmail            string    `json:"nuEmail"`
	Discipline         string    `json:"discipline"`
	YearOfGraduation   int       `json:"yearOfGraduation"`
	CGPA               float64   `json:"cgpa"`
	PersonalEmail      string    `json:"personalEmail,omitempty"`
	ProfilePic         string    `json:"profilePic,omitempty"`
	Contact            string    `json:"contact,omitempty"`
	Tagline            string    `json:"tagline,omitempty"`
	PersonalExperience string    `json:"personalExperience,omitempty"`
	Certificate        string    `json:"certificate,omitempty"`
	FYP                string    `json:"fyp,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type GetGraduate interface {
	Execute(ctx context.Context, in GetGraduateInput) (GraduateOutput, error)
}

type getGraduate struct {
	repo domain.QueryRepository
}

func NewGetGraduate(repo domain.QueryRepository) GetGraduate {
	return &getGraduate{repo: repo}
}

func (uc *getGraduate) Execute(ctx context.Context, in GetGraduateInput) (GraduateOutput, error) {
	g, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return GraduateOutput{}, mapLookupError(err, ErrGetGraduate)
	}
	return toGraduateOutput(*g), nil
}

// mapLookupError translates store errors shared by the id-addressed use cases.
func mapLookupError(err error, fallback error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidGraduateID):
		return ErrInvalidGraduateID
	case errors.Is(err, domain.ErrGraduateNotFound):
		return ErrGraduateNotFound
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}

func toGraduateOutput(g domain.Graduate) GraduateOutput {
	return GraduateOutput{
		ID:                 g.ID,
		NuID:               g.NuID,
		FullName:           g.FullName,
		NuEmail:            g.NuEmail,
		Discipline:         g.Discipline,
		YearOfGraduation:   g.YearOfGraduation,
		CGPA:               g.CGPA,
		PersonalEmail:      g.PersonalEmail,
		ProfilePic:         g.ProfilePic,
		Contact:            g.Contact,
		Tagline:            g.Tagline,
		PersonalExperience: g.PersonalExperience,
		Certificate:        g.Certificate,
		FYP:                g.FYP,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}
