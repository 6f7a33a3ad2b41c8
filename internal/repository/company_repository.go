package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// ListCompanies returns companies ordered by name. A nil archived flag
// returns every company.
func (r *CompanyRepository) ListCompanies(ctx context.Context, archived *bool) ([]model.Company, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if archived != nil {
		query = query.Where("archived = ?", *archived)
	}

	var companies []model.Company
	if err := query.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) ListCompaniesByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Company, error) {
	if len(ids) == 0 {
		return []model.Company{}, nil
	}
	var companies []model.Company
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, company *model.Company) error {
	return updateAll(r.db.WithContext(ctx), company, company.ID)
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteReturning(tx, &company, id)
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}
