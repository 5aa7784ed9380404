package sport

import "context"

type Service interface {
	List(ctx context.Context) ([]*Sport, error)
	GetByID(ctx context.Context, id string) (*Sport, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Sport, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Sport, error) {
	return s.repo.GetByID(ctx, id)
}
