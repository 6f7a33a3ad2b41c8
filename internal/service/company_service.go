package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type CompanyService struct {
	companies CompanyStore
}

type CompanyInput struct {
	Name             *string
	Email            *string
	PhoneNumber      *string
	LandlinePhone    *string
	RFC              *string
	TaxResidence     *string
	ConstitutionDate *time.Time
	Archived         *bool
}

func NewCompanyService(companies CompanyStore) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) CreateCompany(ctx context.Context, input CompanyInput) (*model.Company, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, invalidInput("name is required")
	}

	company := &model.Company{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	applyCompanyInput(company, input)

	if err := s.companies.CreateCompany(ctx, company); err != nil {
		return nil, unexpected("create company", err)
	}
	return company, nil
}

// ListCompanies returns every company, or only the ones not archived.
func (s *CompanyService) ListCompanies(ctx context.Context, onlyUnarchived bool) ([]model.Company, error) {
	var archived *bool
	if onlyUnarchived {
		archived = new(bool)
	}
	companies, err := s.companies.ListCompanies(ctx, archived)
	if err != nil {
		return nil, unexpected("list companies", err)
	}
	if companies == nil {
		companies = []model.Company{}
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companies.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, unexpected("get company", err)
	}
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, input CompanyInput) (*model.Company, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, invalidInput("name must not be empty")
	}
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCompanyInput(company, input)
	now := time.Now().UTC()
	company.UpdatedAt = &now

	if err := s.companies.UpdateCompany(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, unexpected("update company", err)
	}
	return company, nil
}

// ToggleArchived flips the archived flag of a company.
func (s *CompanyService) ToggleArchived(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	archived := !company.Archived
	return s.UpdateCompany(ctx, id, CompanyInput{Archived: &archived})
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companies.DeleteCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, unexpected("delete company", err)
	}
	return company, nil
}

func applyCompanyInput(company *model.Company, input CompanyInput) {
	if input.Name != nil {
		company.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		company.Email = input.Email
	}
	if input.PhoneNumber != nil {
		company.PhoneNumber = input.PhoneNumber
	}
	if input.LandlinePhone != nil {
		company.LandlinePhone = input.LandlinePhone
	}
	if input.RFC != nil {
		company.RFC = input.RFC
	}
	if input.TaxResidence != nil {
		company.TaxResidence = input.TaxResidence
	}
	if input.ConstitutionDate != nil {
		company.ConstitutionDate = input.ConstitutionDate
	}
	if input.Archived != nil {
		company.Archived = *input.Archived
	}
}
