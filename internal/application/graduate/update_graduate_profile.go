package graduate

import (
	"context"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

type UpdateGraduateProfileInput struct {
	ID     string
	Caller Caller
	Patch  domain.ProfilePatch
}

type UpdateGraduateProfile interface {
	Execute(ctx context.Context, in UpdateGraduateProfileInput) (GraduateOutput, error)
}

type updateGraduateProfile struct {
	repo domain.CommandRepository
}

func NewUpdateGraduateProfile(repo domain.CommandRepository) UpdateGraduateProfile {
	return &updateGraduateProfile{repo: repo}
}

// Execute lets the owning graduate edit self-service fields; administrators may
// also edit the academic record. nuId and nuEmail are not part of a patch.
func (uc *updateGraduateProfile) Execute(ctx context.Context, in UpdateGraduateProfileInput) (GraduateOutput, error) {
	isOwner := in.Caller.Role == RoleGraduate && in.Caller.ID != "" && in.Caller.ID == in.ID
	if !in.Caller.IsAdmin() && !isOwner {
		return GraduateOutput{}, ErrForbidden
	}
	if !in.Caller.IsAdmin() && in.Patch.TouchesAdminFields() {
		return GraduateOutput{}, ErrForbidden
	}
	if in.Patch.IsEmpty() {
		return GraduateOutput{}, ErrEmptyPatch
	}

	g, err := uc.repo.UpdateProfile(ctx, in.ID, in.Patch)
	if err != nil {
		return GraduateOutput{}, mapLookupError(err, ErrUpdateGraduate)
	}
	return toGraduateOutput(*g), nil
}
