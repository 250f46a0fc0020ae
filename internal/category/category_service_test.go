package category_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sudono1/gamesucks-api/internal/category"
	mock "github.com/sudono1/gamesucks-api/internal/mock/category"
)

func TestCategoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "RPG").Return(category.Category{}, sql.ErrNoRows)
		repo.EXPECT().Create(ctx, "RPG").Return(category.Category{
			ID: uuid.New(), Name: "RPG",
		}, nil)

		res, err := svc.Create(ctx, category.UpsertCategoryRequest{Name: "RPG"})
		assert.NoError(t, err)
		assert.Equal(t, "RPG", res.Name)
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "RPG").Return(category.Category{
			ID: uuid.New(), Name: "RPG",
		}, nil)

		_, err := svc.Create(ctx, category.UpsertCategoryRequest{Name: "RPG"})
		assert.ErrorIs(t, err, category.ErrDuplicateCategory)
	})

	t.Run("lookup_error_bubbles_up", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "RPG").Return(category.Category{}, errors.New("db down"))

		_, err := svc.Create(ctx, category.UpsertCategoryRequest{Name: "RPG"})
		assert.Error(t, err)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().UpdateName(ctx, id, "Indie").Return(category.Category{
			ID: id, Name: "Indie",
		}, nil)

		res, err := svc.Update(ctx, id.String(), category.UpsertCategoryRequest{Name: "Indie"})
		assert.NoError(t, err)
		assert.Equal(t, "Indie", res.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().UpdateName(ctx, id, "Indie").Return(category.Category{}, sql.ErrNoRows)

		_, err := svc.Update(ctx, id.String(), category.UpsertCategoryRequest{Name: "Indie"})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := svc.Update(ctx, "abc", category.UpsertCategoryRequest{Name: "Indie"})
		assert.ErrorIs(t, err, category.ErrInvalidCategoryID)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().Delete(ctx, id).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, id.String()))
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().Delete(ctx, id).Return(int64(0), nil)

		err := svc.Delete(ctx, id.String())
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]category.Category{
		{ID: uuid.New(), Name: "RPG"},
		{ID: uuid.New(), Name: "Roguelike"},
	}, nil)

	res, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
