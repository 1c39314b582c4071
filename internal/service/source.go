package service

import (
	"context"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
)

// Source описывает удалённый источник рецептов, который загружает несколько
// лент и возвращает «сырые» записи без нормализации.
//
// Требования к реализации:
// 1) FetchMany отправляет не более одного FetchResult на каждый URL и затем закрывает канал;
// 2) порядок результатов не гарантируется;
// 3) реализация обязана уважать ctx (отмена/таймауты).
type Source interface {
	FetchMany(ctx context.Context, urls []string) <-chan FetchResult
}

// FetchResult — результат загрузки одной ленты.
// Если Err != nil, Items пуст.
type FetchResult struct {
	URL   string
	Items []models.RawRecipe
	Err   error
}
