package services

import (
	"context"
	"errors"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
)

var ErrServiceNameRequired = errors.New("service name is required")

// CatalogService manages the reusable service templates. Templates are a
// copy-source for quote items; editing one never touches past quotes.
type CatalogService struct {
	Repo *repositories.ServiceRepository
}

func NewCatalogService(repo *repositories.ServiceRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) CreateService(ctx context.Context, userID int, req *models.CreateServiceRequest) (*models.Service, error) {
	if req.Name == "" {
		return nil, ErrServiceNameRequired
	}
	serviceType := req.Type
	if serviceType == "" {
		serviceType = models.ServiceTypePackage
	}

	service := &models.Service{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		DefaultPrice: req.DefaultPrice,
		Type:         serviceType,
	}
	if err := s.Repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) ListServices(ctx context.Context, userID int) ([]*models.Service, error) {
	return s.Repo.List(ctx, userID)
}

func (s *CatalogService) UpdateService(ctx context.Context, userID, id int, req *models.UpdateServiceRequest) (*models.Service, error) {
	if req.Name == "" {
		return nil, ErrServiceNameRequired
	}

	service := &models.Service{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		DefaultPrice: req.DefaultPrice,
		Type:         req.Type,
	}
	if service.Type == "" {
		service.Type = models.ServiceTypePackage
	}
	if err := s.Repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, userID, id int) error {
	return s.Repo.Delete(ctx, userID, id)
}
