package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staywise/config"
	"staywise/infras/kafka"
	"staywise/infras/metrics"
	"staywise/infras/otel"
	"staywise/internal/domains/onboarding/model"
	"staywise/internal/domains/onboarding/model/dto"
	"staywise/internal/domains/onboarding/repository"
	"staywise/shared/constant"
	"staywise/shared/failure"
	"staywise/shared/password"
	"staywise/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Onboarding drives the sign-up wizard. Every call loads the session, applies
// one transition and stores it again.
type Onboarding interface {
	Start(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	ChooseRole(ctx context.Context, id string, req dto.ChooseRoleRequest) (dto.SessionResponse, error)
	Fill(ctx context.Context, id string, req dto.FillRequest) (dto.SessionResponse, error)
	Next(ctx context.Context, id string) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Agree(ctx context.Context, id string, req dto.AgreementRequest) (dto.SessionResponse, error)
	Finalize(ctx context.Context, id string) (dto.SessionResponse, error)
	Skip(ctx context.Context, id string) (dto.SessionResponse, error)
}

type serviceImpl struct {
	repo  repository.Session
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Session, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Onboarding {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".onboarding.Start")
	defer scope.End()

	session := model.NewSession(uuid.NewString(), timezone.Now())

	if err = s.repo.Save(ctx, session); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start onboarding session")

		return res, err
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".onboarding.Get")
	defer scope.End()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return res, err
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) ChooseRole(ctx context.Context, id string, req dto.ChooseRoleRequest) (dto.SessionResponse, error) {
	return s.transition(ctx, id, "ChooseRole", func(session *model.Session, now time.Time) error {
		return session.ChooseRole(req.Role, now)
	})
}

func (s *serviceImpl) Fill(ctx context.Context, id string, req dto.FillRequest) (dto.SessionResponse, error) {
	var hash string

	if req.Password != nil && *req.Password != "" {
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash onboarding password")

			return dto.SessionResponse{}, failure.BadRequest(err)
		}

		hash = hashed
	}

	return s.transition(ctx, id, "Fill", func(session *model.Session, now time.Time) error {
		return session.Fill(func(profile *model.Profile) {
			req.Apply(profile)

			if req.Password != nil {
				profile.PasswordHash = hash
			}
		}, now)
	})
}

// Next at the agreement step is the finish button.
func (s *serviceImpl) Next(ctx context.Context, id string) (dto.SessionResponse, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	if session.Step == model.StepAgreement {
		return s.Finalize(ctx, id)
	}

	return s.transition(ctx, id, "Next", func(session *model.Session, now time.Time) error {
		return session.Next(now)
	})
}

func (s *serviceImpl) Back(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, "Back", func(session *model.Session, now time.Time) error {
		return session.Back(now)
	})
}

func (s *serviceImpl) Agree(ctx context.Context, id string, req dto.AgreementRequest) (dto.SessionResponse, error) {
	return s.transition(ctx, id, "Agree", func(session *model.Session, now time.Time) error {
		return session.Agree(*req.Accepted, now)
	})
}

// Finalize waits APP_ONBOARDING_COMPLETION_DELAY_MS before completing. The wait
// ends early when ctx is cancelled, leaving the session at the agreement step.
func (s *serviceImpl) Finalize(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".onboarding.Finalize")
	defer scope.End()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return res, err
	}

	if err = session.CanFinalize(); err != nil {
		return res, err
	}

	if err = wait(ctx, time.Duration(s.cfg.App.Onboarding.CompletionDelayMs)*time.Millisecond); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("session", id).Msg("onboarding finalize cancelled")

		return res, fmt.Errorf("finalize cancelled: %w", err)
	}

	return s.transition(ctx, id, "Finalize", func(session *model.Session, now time.Time) error {
		return session.Finalize(now)
	})
}

func (s *serviceImpl) Skip(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, "Skip", func(session *model.Session, now time.Time) error {
		return session.Skip(now)
	})
}

func (s *serviceImpl) transition(ctx context.Context, id, name string, apply func(*model.Session, time.Time) error) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".onboarding."+name)
	defer scope.End()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return res, err
	}

	wasCompleted := session.Completed()

	if err = apply(&session, timezone.Now()); err != nil {
		log.Debug().Err(err).Str("session", id).Str("transition", name).Msg("onboarding transition rejected")

		return res, err
	}

	if err = s.repo.Save(ctx, session); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session", id).Msg("failed to save onboarding session")

		return res, err
	}

	scope.SetAttributes(map[string]any{"onboarding.step": string(session.Step), "onboarding.role": session.Role})

	if !wasCompleted && session.Completed() {
		s.completed(ctx, session)
	}

	res.FromModel(session)

	return res, nil
}

// completed publishes the completion once per session, however many concurrent
// transitions saved it. A lost event does not undo the completion.
func (s *serviceImpl) completed(ctx context.Context, session model.Session) {
	first, err := s.repo.MarkCompleted(ctx, session.ID)
	if err != nil {
		log.Error().Err(err).Str("session", session.ID).Msg("failed to mark onboarding completion, event not published")

		return
	}

	if !first {
		log.Debug().Str("session", session.ID).Msg("onboarding completion already published")

		return
	}

	metrics.IncOnboardingCompleted(session.Role)

	event := dto.CompletedEvent{}
	event.FromModel(session)

	if err := s.kafka.SendMessages(ctx, kafka.Message{Key: session.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("session", session.ID).Msg("failed to publish onboarding completion")
	}

	log.Info().Str("session", session.ID).Str("role", session.Role).Bool("guest", session.Guest).Msg("onboarding completed")
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsCancelled reports whether err came from the caller going away.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
