package services

import (
	"context"
	"errors"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
)

var ErrClientNameRequired = errors.New("client name is required")

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) CreateClient(ctx context.Context, userID int, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, ErrClientNameRequired
	}
	clientType := req.Type
	if clientType == "" {
		clientType = models.ClientTypeIndividual
	}

	client := &models.Client{
		UserID:  userID,
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Type:    clientType,
		Notes:   req.Notes,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, userID, id int) (*models.Client, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *ClientService) ListClients(ctx context.Context, userID int) ([]*models.Client, error) {
	return s.Repo.List(ctx, userID)
}

func (s *ClientService) UpdateClient(ctx context.Context, userID, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, ErrClientNameRequired
	}

	client, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.TaxID = req.TaxID
	client.Phone = req.Phone
	client.Email = req.Email
	client.Address = req.Address
	if req.Type != "" {
		client.Type = req.Type
	}
	client.Notes = req.Notes

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, userID, id int) error {
	return s.Repo.Delete(ctx, userID, id)
}
