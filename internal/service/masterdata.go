package service

import (
	"context"
	"fmt"
	"strings"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type masterDataService struct {
	companyRepo  repository.CompanyRepository
	yardRepo     repository.YardRepository
	customerRepo repository.CustomerRepository
}

func NewMasterDataService(
	companyRepo repository.CompanyRepository,
	yardRepo repository.YardRepository,
	customerRepo repository.CustomerRepository,
) MasterDataService {
	return &masterDataService{
		companyRepo:  companyRepo,
		yardRepo:     yardRepo,
		customerRepo: customerRepo,
	}
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	return nil
}

func (s *masterDataService) CreateCompany(ctx context.Context, company *domain.Company) error {
	if err := requireName(company.Name); err != nil {
		return err
	}
	return mapDBError(s.companyRepo.Create(ctx, company))
}

func (s *masterDataService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *masterDataService) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if err := requireName(company.Name); err != nil {
		return err
	}
	return mapDBError(s.companyRepo.Update(ctx, company))
}

func (s *masterDataService) DeleteCompany(ctx context.Context, id int32) error {
	return mapDBError(s.companyRepo.Delete(ctx, id))
}

func (s *masterDataService) CreateYard(ctx context.Context, yard *domain.Yard) error {
	if err := requireName(yard.Name); err != nil {
		return err
	}
	return mapDBError(s.yardRepo.Create(ctx, yard))
}

func (s *masterDataService) ListYards(ctx context.Context) ([]domain.Yard, error) {
	return s.yardRepo.List(ctx)
}

func (s *masterDataService) UpdateYard(ctx context.Context, yard *domain.Yard) error {
	if err := requireName(yard.Name); err != nil {
		return err
	}
	return mapDBError(s.yardRepo.Update(ctx, yard))
}

func (s *masterDataService) DeleteYard(ctx context.Context, id int32) error {
	return mapDBError(s.yardRepo.Delete(ctx, id))
}

func (s *masterDataService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := requireName(customer.Name); err != nil {
		return err
	}
	return mapDBError(s.customerRepo.Create(ctx, customer))
}

func (s *masterDataService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *masterDataService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := requireName(customer.Name); err != nil {
		return err
	}
	return mapDBError(s.customerRepo.Update(ctx, customer))
}
