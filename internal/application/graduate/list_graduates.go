package graduate

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range for every store.
	MaxPage = 1_000_000
)

type ListGraduatesInput struct {
	Page   int
	Limit  int
	Search string
}

type ListGraduatesOutput struct {
	Items      []GraduateOutput `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int64            `json:"totalPages"`
}

type ListGraduates interface {
	Execute(ctx context.Context, in ListGraduatesInput) (ListGraduatesOutput, error)
}

type listGraduates struct {
	repo domain.QueryRepository
}

func NewListGraduates(repo domain.QueryRepository) ListGraduates {
	return &listGraduates{repo: repo}
}

func (uc *listGraduates) Execute(ctx context.Context, in ListGraduatesInput) (ListGraduatesOutput, error) {
	filter := domain.ListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Search: strings.TrimSpace(in.Search),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Page > MaxPage {
		filter.Page = MaxPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	page, err := uc.repo.List(ctx, filter)
	if err != nil {
		return ListGraduatesOutput{}, fmt.Errorf("%w: %v", ErrListGraduates, err)
	}

	items := make([]GraduateOutput, 0, len(page.Items))
	for _, g := range page.Items {
		items = append(items, toGraduateOutput(g))
	}

	limit := int64(filter.Limit)
	return ListGraduatesOutput{
		Items:      items,
		Total:      page.Total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: (page.Total + limit - 1) / limit,
	}, nil
}
