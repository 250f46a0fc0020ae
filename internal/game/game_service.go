package game

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sudono1/gamesucks-api/internal/category"
)

//go:generate mockgen -source=game_service.go -destination=../mock/game/game_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, pelapakID string, req CreateGameRequest) (GameResponse, error)
	GetMine(ctx context.Context, pelapakID, id string) (GameResponse, error)
	ListMine(ctx context.Context, pelapakID string) ([]GameResponse, error)
	Update(ctx context.Context, pelapakID, id string, req UpdateGameRequest) (GameResponse, error)
	Delete(ctx context.Context, pelapakID, id string) error
	GetPublic(ctx context.Context, id string) (GameResponse, error)
	ListPublic(ctx context.Context, q ListPublicQuery) (PagedGamesResponse, error)
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
	cache        Cache
	validate     *validator.Validate
}

func NewService(repo Repository, categoryRepo category.Repository, cache Cache) Service {
	validate := validator.New()
	// DTO hanya menandai aturan lewat tag binding milik gin
	validate.SetTagName("binding")

	return &service{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        cache,
		validate:     validate,
	}
}

func (s *service) parseIDs(pelapakID, id string) (uuid.UUID, uuid.UUID, error) {
	pid, err := uuid.Parse(pelapakID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidGameID
	}
	gid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidGameID
	}
	return pid, gid, nil
}

func (s *service) resolveCategory(ctx context.Context, name string) (uuid.UUID, error) {
	c, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrCategoryNotFound
		}
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (s *service) Create(ctx context.Context, pelapakID string, req CreateGameRequest) (GameResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return GameResponse{}, mapValidationError(err)
	}

	pid, err := uuid.Parse(pelapakID)
	if err != nil {
		return GameResponse{}, ErrInvalidGameID
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return GameResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusShow
	}

	created, err := s.repo.Create(ctx, CreateGameParams{
		Title:       req.Title,
		Studio:      req.Studio,
		CategoryID:  categoryID,
		Price:       req.Price,
		Stock:       req.Stock,
		PictureURL:  req.PictureURL,
		Status:      status,
		Description: req.Description,
		PelapakID:   pid,
	})
	if err != nil {
		return GameResponse{}, err
	}

	s.cache.Set(ctx, created)
	return toGameResponse(created), nil
}

func (s *service) GetMine(ctx context.Context, pelapakID, id string) (GameResponse, error) {
	pid, gid, err := s.parseIDs(pelapakID, id)
	if err != nil {
		return GameResponse{}, err
	}

	g, err := s.repo.GetByIDForPelapak(ctx, pid, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GameResponse{}, ErrGameNotFound
		}
		return GameResponse{}, err
	}
	return toGameResponse(g), nil
}

func (s *service) ListMine(ctx context.Context, pelapakID string) ([]GameResponse, error) {
	pid, err := uuid.Parse(pelapakID)
	if err != nil {
		return nil, ErrInvalidGameID
	}

	games, err := s.repo.ListByPelapak(ctx, pid)
	if err != nil {
		return nil, err
	}

	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, toGameResponse(g))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, pelapakID, id string, req UpdateGameRequest) (GameResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return GameResponse{}, mapValidationError(err)
	}

	pid, gid, err := s.parseIDs(pelapakID, id)
	if err != nil {
		return GameResponse{}, err
	}

	arg := UpdateGameParams{
		ID:          gid,
		PelapakID:   pid,
		Title:       req.Title,
		Studio:      req.Studio,
		Price:       req.Price,
		Stock:       req.Stock,
		PictureURL:  req.PictureURL,
		Status:      req.Status,
		Description: req.Description,
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return GameResponse{}, err
		}
		arg.CategoryID = &categoryID
	}

	updated, err := s.repo.Update(ctx, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GameResponse{}, ErrGameNotFound
		}
		return GameResponse{}, err
	}

	// Harga bisa berubah, jadi entri cache lama harus dibuang
	s.cache.Del(ctx, gid)
	return toGameResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, pelapakID, id string) error {
	pid, gid, err := s.parseIDs(pelapakID, id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, pid, gid)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	s.cache.Del(ctx, gid)
	return nil
}

func (s *service) GetPublic(ctx context.Context, id string) (GameResponse, error) {
	gid, err := uuid.Parse(id)
	if err != nil {
		return GameResponse{}, ErrInvalidGameID
	}

	if g, ok := s.cache.Get(ctx, gid); ok {
		return toGameResponse(g), nil
	}

	g, err := s.repo.GetByID(ctx, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GameResponse{}, ErrGameNotFound
		}
		return GameResponse{}, err
	}

	s.cache.Set(ctx, g)
	return toGameResponse(g), nil
}

func (s *service) ListPublic(ctx context.Context, q ListPublicQuery) (PagedGamesResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = 25
	}

	arg := ListPublicParams{
		Title:    q.Title,
		Studio:   q.Studio,
		Category: q.Category,
		Price:    q.Price,
		Stock:    q.Stock,
		OrderBy:  q.OrderBy,
		Sort:     q.Sort,
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}
	if q.ID != "" {
		gid, err := uuid.Parse(q.ID)
		if err != nil {
			return PagedGamesResponse{}, ErrInvalidGameID
		}
		arg.ID = &gid
	}

	games, total, err := s.repo.ListPublic(ctx, arg)
	if err != nil {
		return PagedGamesResponse{}, err
	}

	data := make([]GameResponse, 0, len(games))
	for _, g := range games {
		data = append(data, toGameResponse(g))
	}

	totalPage := total / int64(perPage)
	if total%int64(perPage) != 0 {
		totalPage++
	}

	return PagedGamesResponse{
		Page:      page,
		TotalPage: totalPage,
		PerPage:   perPage,
		Data:      data,
	}, nil
}
