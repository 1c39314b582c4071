package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/catalog"
	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/storage"
	"github.com/pribylovaa/go-recipe-catalog/pkg/log"
)

// AddBookmark добавляет рецепт в закладки пользователя. Повторное добавление — не ошибка.
//
// Ошибки:
// - ErrUnauthenticated — userID не задан;
// - ErrInvalidArgument — recipeID <= 0;
// - ErrNotFound — рецепта нет в каталоге.
func (s *Service) AddBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "service.bookmarks.AddBookmark"

	if err := validateBookmark(userID, recipeID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx)

	if err := s.storage.AddBookmark(ctx, userID, recipeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("add_bookmark_recipe_not_found",
				slog.String("op", op),
				slog.Int64("recipe_id", recipeID),
			)

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("add_bookmark_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("bookmark_added",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Int64("recipe_id", recipeID),
	)

	return nil
}

// RemoveBookmark удаляет рецепт из закладок пользователя.
//
// Ошибки:
// - ErrUnauthenticated — userID не задан;
// - ErrInvalidArgument — recipeID <= 0;
// - ErrNotFound — закладки не было.
func (s *Service) RemoveBookmark(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	const op = "service.bookmarks.RemoveBookmark"

	if err := validateBookmark(userID, recipeID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx)

	if err := s.storage.RemoveBookmark(ctx, userID, recipeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("remove_bookmark_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("bookmark_removed",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Int64("recipe_id", recipeID),
	)

	return nil
}

// Bookmarks возвращает рецепты из закладок пользователя, упорядоченные по критерию c.
func (s *Service) Bookmarks(ctx context.Context, userID uuid.UUID, c models.FilterCriterion) ([]models.Recipe, error) {
	const op = "service.bookmarks.Bookmarks"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	items, err := s.storage.BookmarkedRecipes(ctx, userID)
	if err != nil {
		log.From(ctx).Error("bookmarks_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return catalog.Select(items, c), nil
}

func validateBookmark(userID uuid.UUID, recipeID int64) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	if recipeID <= 0 {
		return fmt.Errorf("%w: recipe_id must be positive", ErrInvalidArgument)
	}

	return nil
}
