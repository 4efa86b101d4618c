package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"staywise/config"
	"staywise/infras/genai"
	"staywise/infras/metrics"
	"staywise/infras/otel"
	"staywise/internal/domains/concierge/model"
	"staywise/internal/domains/concierge/model/dto"
	"staywise/internal/domains/concierge/repository"
	listingModel "staywise/internal/domains/listing/model"
	listingService "staywise/internal/domains/listing/service"
	"staywise/shared/constant"
	"staywise/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Concierge is the assistant chat. Only one reply per conversation is generated
// at a time.
type Concierge interface {
	Start(ctx context.Context) (dto.ConversationResponse, error)
	Get(ctx context.Context, id string) (dto.ConversationResponse, error)
	Send(ctx context.Context, id string, req dto.SendRequest) (dto.SendResponse, error)
	Recommend(ctx context.Context, req dto.RecommendRequest) dto.RecommendResponse
}

type serviceImpl struct {
	repo      repository.Conversation
	listing   listingService.Listing
	generator genai.Generator
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Conversation, listing listingService.Listing, generator genai.Generator, cfg *config.Config, otel otel.Otel) Concierge {
	return &serviceImpl{
		repo:      repo,
		listing:   listing,
		generator: generator,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context) (res dto.ConversationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".concierge.Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conversation := model.NewConversation(uuid.NewString(), uuid.NewString(), timezone.Now())

	if err = s.repo.Save(ctx, conversation); err != nil {
		log.Error().Err(err).Msg("failed to start conversation")

		return res, err
	}

	res.FromModel(conversation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ConversationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".concierge.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conversation, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(conversation)

	return res, nil
}

// Send appends the user message and the generated reply. Blank text, and any
// text sent while a reply is still pending, leaves the transcript as it was.
func (s *serviceImpl) Send(ctx context.Context, id string, req dto.SendRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".concierge.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if model.Blank(req.Text) {
		metrics.IncConciergeSend(metrics.SendBlank)

		return s.unchanged(ctx, id)
	}

	token, acquired, err := s.repo.AcquireBusy(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("conversation", id).Msg("failed to mark conversation busy")

		return res, err
	}

	if !acquired {
		metrics.IncConciergeSend(metrics.SendBusy)
		scope.AddEvent("Conversation busy")

		return s.unchanged(ctx, id)
	}

	// The reply is stored even when the caller goes away.
	ctx = context.WithoutCancel(ctx)

	defer func() {
		if err := s.repo.ReleaseBusy(ctx, id, token); err != nil {
			log.Error().Err(err).Str("conversation", id).Msg("failed to release busy flag")
		}
	}()

	conversation, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	conversation.Append(model.Message{ID: uuid.NewString(), Role: model.RoleUser, Text: req.Text, CreatedAt: timezone.Now()})

	if err = s.repo.Save(ctx, conversation); err != nil {
		log.Error().Err(err).Str("conversation", id).Msg("failed to save user message")

		return res, err
	}

	reply := s.boundedReply(ctx, req.Text)

	// Reload so messages stored while generating are kept.
	conversation, err = s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	conversation.Append(model.Message{ID: uuid.NewString(), Role: model.RoleBot, Text: reply, CreatedAt: timezone.Now()})

	if err = s.repo.Save(ctx, conversation); err != nil {
		log.Error().Err(err).Str("conversation", id).Msg("failed to save reply")

		return res, err
	}

	metrics.IncConciergeSend(metrics.SendAccepted)

	res.Accepted = true
	res.Conversation.FromModel(conversation)

	return res, nil
}

// Recommend answers one query without a transcript.
func (s *serviceImpl) Recommend(ctx context.Context, req dto.RecommendRequest) dto.RecommendResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".concierge.Recommend")
	defer scope.End()

	return dto.RecommendResponse{Reply: s.reply(ctx, req.Query)}
}

func (s *serviceImpl) unchanged(ctx context.Context, id string) (res dto.SendResponse, err error) {
	conversation, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.Conversation.FromModel(conversation)

	return res, nil
}

// boundedReply gives generation no longer than the busy flag lives.
func (s *serviceImpl) boundedReply(ctx context.Context, query string) string {
	ttl := s.cfg.App.Concierge.BusyTTLSeconds
	if ttl <= 0 {
		return s.reply(ctx, query)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(ttl)*time.Second)
	defer cancel()

	return s.reply(ctx, query)
}

func (s *serviceImpl) reply(ctx context.Context, query string) string {
	catalog, err := s.listing.Catalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load catalog for recommendation")

		return model.CatalogTroubleReply
	}

	return s.recommend(ctx, query, catalog)
}

// recommend makes exactly one generation call and never fails.
func (s *serviceImpl) recommend(ctx context.Context, query string, listings []listingModel.Listing) string {
	prompt, err := model.BuildPrompt(query, listings)
	if err != nil {
		log.Error().Err(err).Msg("failed to build recommendation prompt")
		metrics.IncRecommendation(metrics.RecommendationFallback)

		return model.FallbackReply
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("recommendation failed")
		metrics.IncRecommendation(metrics.RecommendationFallback)

		return model.FallbackReply
	}

	if text == "" {
		metrics.IncRecommendation(metrics.RecommendationEmpty)

		return model.EmptyReply
	}

	metrics.IncRecommendation(metrics.RecommendationOK)

	return text
}
