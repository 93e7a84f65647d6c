package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/nucareers/career-portal/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type GraduateQueryRepository struct {
	db *gorm.DB
}

func NewGraduateQueryRepository(db *gorm.DB) *GraduateQueryRepository {
	return &GraduateQueryRepository{db: db}
}

func (r *GraduateQueryRepository) GetByID(ctx context.Context, id string) (*domain.Graduate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidGraduateID
	}

	var row models.Graduate
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGraduateNotFound
		}
		return nil, fmt.Errorf("get graduate by id: %w", err)
	}

	g := toDomainGraduate(row)
	return &g, nil
}

func (r *GraduateQueryRepository) List(ctx context.Context, filter domain.ListFilter) (domain.Page, error) {
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Graduate{})
		if filter.Search != "" {
			pattern := regexp.QuoteMeta(filter.Search)
			q = q.Where("full_name ~* ? OR nu_id ~* ? OR discipline ~* ?", pattern, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return domain.Page{}, fmt.Errorf("count graduates: %w", err)
	}

	var rows []models.Graduate
	err := filtered().
		Order("full_name ASC").
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return domain.Page{}, fmt.Errorf("list graduates: %w", err)
	}

	items := make([]domain.Graduate, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomainGraduate(row))
	}
	return domain.Page{Items: items, Total: total}, nil
}

func (r *GraduateQueryRepository) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.Graduate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidGraduateID
	}

	updates := profileUpdates(patch)
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.Graduate{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update graduate: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrGraduateNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *GraduateQueryRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidGraduateID
	}

	res := r.db.WithContext(ctx).Delete(&models.Graduate{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete graduate: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrGraduateNotFound
	}
	return nil
}

func profileUpdates(patch domain.ProfilePatch) map[string]any {
	updates := map[string]any{}
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	set("full_name", patch.FullName)
	set("discipline", patch.Discipline)
	set("personal_email", patch.PersonalEmail)
	set("profile_pic", patch.ProfilePic)
	set("contact", patch.Contact)
	set("tagline", patch.Tagline)
	set("personal_experience", patch.PersonalExperience)
	set("certificate", patch.Certificate)
	set("fyp", patch.FYP)
	if patch.YearOfGraduation != nil {
		updates["year_of_graduation"] = *patch.YearOfGraduation
	}
	if patch.CGPA != nil {
		updates["cgpa"] = *patch.CGPA
	}
	return updates
}

func toDomainGraduate(row models.Graduate) domain.Graduate {
	return domain.Graduate{
		ID:                 row.ID,
		NuID:               row.NuID,
		FullName:           row.FullName,
		NuEmail:            row.NuEmail,
		Discipline:         row.Discipline,
		YearOfGraduation:   row.YearOfGraduation,
		CGPA:               row.CGPA,
		PersonalEmail:      row.PersonalEmail,
		ProfilePic:         row.ProfilePic,
		Contact:            row.Contact,
		Tagline:            row.Tagline,
		PersonalExperience: row.PersonalExperience,
		Certificate:        row.Certificate,
		FYP:                row.FYP,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
