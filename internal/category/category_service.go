package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CategoryResponse, error)
	Create(ctx context.Context, req UpsertCategoryRequest) (CategoryResponse, error)
	Update(ctx context.Context, id string, req UpsertCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidCategoryID
	}
	return parsed, nil
}

func (s *service) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req UpsertCategoryRequest) (CategoryResponse, error) {
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return CategoryResponse{}, ErrDuplicateCategory
	} else if !errors.Is(err, sql.ErrNoRows) {
		return CategoryResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		return CategoryResponse{}, err
	}
	return toCategoryResponse(created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpsertCategoryRequest) (CategoryResponse, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return CategoryResponse{}, err
	}

	updated, err := s.repo.UpdateName(ctx, parsed, req.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}
	return toCategoryResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, parsed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
