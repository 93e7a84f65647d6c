package graduate

import (
	"context"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

type DeleteGraduateInput struct {
	ID     string
	Caller Caller
}

type DeleteGraduate interface {
	Execute(ctx context.Context, in DeleteGraduateInput) error
}

type deleteGraduate struct {
	repo domain.CommandRepository
}

func NewDeleteGraduate(repo domain.CommandRepository) DeleteGraduate {
	return &deleteGraduate{repo: repo}
}

func (uc *deleteGraduate) Execute(ctx context.Context, in DeleteGraduateInput) error {
	if !in.Caller.IsAdmin() {
		return ErrForbidden
	}
	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		return mapLookupError(err, ErrDeleteGraduate)
	}
	return nil
}
