package service

import (
	"fmt"

	"go-business-ws/internal/model"
	"go-business-ws/internal/repository"
	"go-business-ws/pkg/validator"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer, actor Actor) error
	UpdateCustomer(id uint, req *model.Customer, actor Actor) (*model.Customer, error)
	DeleteCustomer(id uint) error
	GetAllCustomers() ([]model.Customer, error)
	GetCustomer(id uint) (*model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

func (s *customerService) CreateCustomer(req *model.Customer, actor Actor) error {
	if err := validator.FirstError(req); err != nil {
		return err
	}
	if existing, err := s.customerRepo.FindByEmail(req.Email); err == nil && existing != nil {
		return ErrDuplicateEmail
	}
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID
	if err := s.customerRepo.Create(req); err != nil {
		return fmt.Errorf("failed to create customer: %w", duplicate(err, ErrDuplicateEmail))
	}
	return nil
}

func (s *customerService) UpdateCustomer(id uint, req *model.Customer, actor Actor) (*model.Customer, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	existing, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	if req.Email != existing.Email {
		if other, err := s.customerRepo.FindByEmail(req.Email); err == nil && other != nil && other.ID != id {
			return nil, ErrDuplicateEmail
		}
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.UpdatedBy = actor.ID
	if err := s.customerRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", duplicate(err, ErrDuplicateEmail))
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return notFound(err, ErrCustomerNotFound)
	}
	return s.customerRepo.Delete(id)
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomer(id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return customer, nil
}
