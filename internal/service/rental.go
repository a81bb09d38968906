package service

import (
	"context"
	"fmt"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
	"mietpark-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	deviceRepo   repository.DeviceRepository
	customerRepo repository.CustomerRepository
	positionRepo repository.PositionRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	deviceRepo repository.DeviceRepository,
	customerRepo repository.CustomerRepository,
	positionRepo repository.PositionRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		deviceRepo:   deviceRepo,
		customerRepo: customerRepo,
		positionRepo: positionRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	start, err := utils.ParseDate(rental.Start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if rental.End != nil {
		end, err := utils.ParseDate(*rental.End)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if end.Before(start) {
			return ErrInvalidRange
		}
	}
	if rental.Status == "" {
		rental.Status = domain.RentalStatusReserved
	}

	if _, err := s.deviceRepo.GetByID(ctx, rental.DeviceID); err != nil {
		return fmt.Errorf("device %d: %w", rental.DeviceID, mapDBError(err))
	}
	if _, err := s.customerRepo.GetByID(ctx, rental.CustomerID); err != nil {
		return fmt.Errorf("customer %d: %w", rental.CustomerID, mapDBError(err))
	}

	return mapDBError(s.rentalRepo.Create(ctx, rental))
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) AddPosition(ctx context.Context, pos *domain.RentalPosition) error {
	if pos.Quantity <= 0 {
		return fmt.Errorf("%w: menge must be positive", ErrValidation)
	}
	if _, err := s.rentalRepo.GetByID(ctx, pos.RentalID); err != nil {
		return fmt.Errorf("rental %d: %w", pos.RentalID, mapDBError(err))
	}
	return mapDBError(s.positionRepo.Create(ctx, pos))
}

// StartRental moves a rental to OFFEN and its device out to the customer.
func (s *rentalService) StartRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	if rental.Status != domain.RentalStatusReserved && rental.Status != domain.RentalStatusOpen {
		return nil, fmt.Errorf("%w: cannot start rental in status %s", ErrInvalidStatus, rental.Status)
	}

	rental.Status = domain.RentalStatusOpen
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, mapDBError(err)
	}

	device, err := s.deviceRepo.GetByID(ctx, rental.DeviceID)
	if err != nil {
		return nil, mapDBError(err)
	}
	device.Status = domain.DeviceStatusRented
	device.LocationKind = domain.LocationCustomer
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, mapDBError(err)
	}
	return rental, nil
}

// CloseRental ends a rental. A missing end date defaults to today.
func (s *rentalService) CloseRental(ctx context.Context, id int32, end *string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}

	endDate := utils.FormatDate(utils.Today())
	if end != nil {
		parsed, err := utils.ParseDate(*end)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		start, err := utils.ParseDate(rental.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if parsed.Before(start) {
			return nil, ErrInvalidRange
		}
		endDate = *end
	}

	rental.End = &endDate
	rental.Status = domain.RentalStatusClosed
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, mapDBError(err)
	}

	device, err := s.deviceRepo.GetByID(ctx, rental.DeviceID)
	if err != nil {
		return nil, mapDBError(err)
	}
	device.Status = domain.DeviceStatusAvailable
	device.LocationKind = domain.LocationYard
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, mapDBError(err)
	}
	return rental, nil
}
