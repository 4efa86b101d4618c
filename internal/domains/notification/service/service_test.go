package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"staywise/config"
	"staywise/infras/otel/mocks"
	notificationMocks "staywise/internal/domains/notification/mocks"
	"staywise/internal/domains/notification/model"
	"staywise/internal/domains/notification/model/dto"
	"staywise/internal/domains/notification/service"
	"staywise/shared/cache"
	cacheMocks "staywise/shared/cache/mocks"
	gDto "staywise/shared/dto"
)

func newService(t *testing.T) (*notificationMocks.MockNotification, *cacheMocks.MockRedisCache, service.Notification) {
	ctrl := gomock.NewController(t)

	repo := notificationMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return repo, mockCache, service.New(repo, cfg, mockCache, mocks.NewOtel())
}

func TestNotificationService_Notifications(t *testing.T) {
	repo, mockCache, svc := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "notification:feed", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
	repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{}).
		Return([]model.Notification{
			{ID: "n_1", Title: "Payment Confirmed", Kind: model.KindPayment, CreatedAt: time.Now()},
			{ID: "n_2", Title: "New Amenity Added", Kind: model.KindAmenity, CreatedAt: time.Now()},
		}, nil)
	mockCache.EXPECT().Save(gomock.Any(), "notification:feed", gomock.Any(), 60).Return(errors.New("redis down"))

	res, err := svc.Notifications(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Notifications, 2)
	assert.Equal(t, "Payment Confirmed", res.Notifications[0].Title)
}

func TestNotificationService_NotificationsCached(t *testing.T) {
	_, mockCache, svc := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "notification:feed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*dto.NotificationsResponse)) = dto.NotificationsResponse{Notifications: []dto.NotificationResponse{{ID: "n_1"}}}

			return nil
		})

	res, err := svc.Notifications(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1)
}

func TestNotificationService_NotificationsFailure(t *testing.T) {
	repo, mockCache, svc := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.Notifications(context.Background())

	assert.ErrorContains(t, err, "failed to get notifications")
}
