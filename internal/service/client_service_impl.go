package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
)

type clientService struct {
	clients repository.ClientRepo
}

func NewClientService(clients repository.ClientRepo) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().UTC()
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.clients.Update(ctx, c)
}

// Delete removes a client. A client that still has invoices is protected:
// deletion cascades to every invoice and item, so it requires force.
func (s *clientService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		n, err := s.clients.CountInvoices(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("client has %d invoice(s); deleting removes them too (use --force to confirm)", n)
		}
	}
	return s.clients.Delete(ctx, id)
}
