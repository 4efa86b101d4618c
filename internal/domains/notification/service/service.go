package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"errors"
	"fmt"
	"staywise/config"
	"staywise/infras/otel"
	"staywise/internal/domains/notification/model"
	"staywise/internal/domains/notification/model/dto"
	"staywise/internal/domains/notification/repository"
	"staywise/shared/cache"
	"staywise/shared/constant"
	gDto "staywise/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheFeed = "notification:feed"

type Notification interface {
	Notifications(ctx context.Context) (dto.NotificationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Notifications returns the feed, newest first.
func (s *serviceImpl) Notifications(ctx context.Context) (res dto.NotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Notifications")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheFeed, &res)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("notification cache unavailable, reading from database")
	}

	notifications, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(notifications)

	if err := s.cache.Save(ctx, cacheFeed, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save notifications to cache")
	}

	return res, nil
}
