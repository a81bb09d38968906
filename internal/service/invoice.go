package service

import (
	"context"
	"fmt"
	"strings"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
	"mietpark-backend/internal/utils"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	rentalRepo  repository.RentalRepository
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, rentalRepo repository.RentalRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, rentalRepo: rentalRepo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	if strings.TrimSpace(invoice.Number) == "" {
		return fmt.Errorf("%w: nummer must not be empty", ErrValidation)
	}
	if invoice.Date == "" {
		invoice.Date = utils.FormatDate(utils.Today())
	} else if _, err := utils.ParseDate(invoice.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.rentalRepo.GetByID(ctx, invoice.RentalID); err != nil {
		return fmt.Errorf("rental %d: %w", invoice.RentalID, mapDBError(err))
	}
	return mapDBError(s.invoiceRepo.Create(ctx, invoice))
}

func (s *invoiceService) SearchInvoices(ctx context.Context, number string) ([]domain.Invoice, error) {
	return s.invoiceRepo.SearchByNumber(ctx, number)
}

func (s *invoiceService) SetInvoicePaid(ctx context.Context, id int32, paid bool) (*domain.Invoice, error) {
	if err := s.invoiceRepo.SetPaid(ctx, id, paid); err != nil {
		return nil, mapDBError(err)
	}
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return invoice, nil
}
