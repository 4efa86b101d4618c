package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staywise/config"
	"staywise/infras/otel"
	"staywise/internal/domains/concierge/model"
	"staywise/shared"
	"staywise/shared/cache"
	"staywise/shared/constant"
	"staywise/shared/failure"
)

const (
	conversationPrefix = "concierge:conversation"
	busyPrefix         = "concierge:busy"
)

var ErrConversationNotFound = failure.NotFound("conversation not found")

// Conversation keeps transcripts and the per-conversation busy flag in Redis.
// The busy flag expires after APP_CONCIERGE_BUSY_TTL_SECONDS even when never released,
// and only the token returned by AcquireBusy releases it.
type Conversation interface {
	Save(ctx context.Context, conversation model.Conversation) error
	Get(ctx context.Context, id string) (model.Conversation, error)
	AcquireBusy(ctx context.Context, id string) (token string, acquired bool, err error)
	ReleaseBusy(ctx context.Context, id, token string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Conversation {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Save(ctx context.Context, conversation model.Conversation) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".concierge.Save")
	defer scope.End()

	key := shared.BuildCacheKey(conversationPrefix, conversation.ID)

	if err = repo.cache.Save(ctx, key, conversation, repo.cfg.App.Concierge.ConversationTTLSeconds); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (conversation model.Conversation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".concierge.Get")
	defer scope.End()

	err = repo.cache.Get(ctx, shared.BuildCacheKey(conversationPrefix, id), &conversation)
	if errors.Is(err, cache.Nil) {
		return conversation, ErrConversationNotFound
	}

	if err != nil {
		scope.TraceError(err)

		return conversation, fmt.Errorf("failed to get conversation: %w", err)
	}

	return conversation, nil
}

func (repo *repositoryImpl) AcquireBusy(ctx context.Context, id string) (token string, acquired bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".concierge.AcquireBusy")
	defer scope.End()

	token, acquired, err = repo.cache.Acquire(ctx, shared.BuildCacheKey(busyPrefix, id), repo.cfg.App.Concierge.BusyTTLSeconds)
	if err != nil {
		scope.TraceError(err)

		return "", false, fmt.Errorf("failed to acquire busy flag: %w", err)
	}

	return token, acquired, nil
}

func (repo *repositoryImpl) ReleaseBusy(ctx context.Context, id, token string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".concierge.ReleaseBusy")
	defer scope.End()

	if err = repo.cache.Release(ctx, shared.BuildCacheKey(busyPrefix, id), token); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to release busy flag: %w", err)
	}

	return nil
}
