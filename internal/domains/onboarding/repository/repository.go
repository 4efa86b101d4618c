package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staywise/config"
	"staywise/infras/otel"
	"staywise/internal/domains/onboarding/model"
	"staywise/shared"
	"staywise/shared/cache"
	"staywise/shared/constant"
	"staywise/shared/failure"
)

const (
	keyPrefix       = "onboarding:session"
	completedPrefix = "onboarding:completed"
)

var ErrSessionNotFound = failure.NotFound("onboarding session not found")

// Session keeps wizard sessions in Redis. They expire after
// APP_ONBOARDING_SESSION_TTL_SECONDS without activity.
type Session interface {
	Save(ctx context.Context, session model.Session) error
	Get(ctx context.Context, id string) (model.Session, error)
	// MarkCompleted reports true to the first caller for a session only.
	MarkCompleted(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Save(ctx context.Context, session model.Session) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".onboarding.Save")
	defer scope.End()

	if err = repo.cache.Save(ctx, shared.BuildCacheKey(keyPrefix, session.ID), session, repo.cfg.App.Onboarding.SessionTTLSeconds); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save onboarding session: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (session model.Session, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".onboarding.Get")
	defer scope.End()

	err = repo.cache.Get(ctx, shared.BuildCacheKey(keyPrefix, id), &session)
	if errors.Is(err, cache.Nil) {
		return session, ErrSessionNotFound
	}

	if err != nil {
		scope.TraceError(err)

		return session, fmt.Errorf("failed to get onboarding session: %w", err)
	}

	return session, nil
}

func (repo *repositoryImpl) MarkCompleted(ctx context.Context, id string) (first bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".onboarding.MarkCompleted")
	defer scope.End()

	_, first, err = repo.cache.Acquire(ctx, shared.BuildCacheKey(completedPrefix, id), repo.cfg.App.Onboarding.SessionTTLSeconds)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark onboarding session completed: %w", err)
	}

	return first, nil
}
