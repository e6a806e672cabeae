package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avvvet/supportchain/internal/cache"
	"github.com/avvvet/supportchain/internal/details"
	"github.com/avvvet/supportchain/internal/metrics"
	"github.com/avvvet/supportchain/internal/models"
	"github.com/avvvet/supportchain/internal/pipeline"
	"go.uber.org/zap"
)

// ErrInvalidInput marks a request whose query is missing or not a string.
var ErrInvalidInput = errors.New("invalid input")

type ChainHandler struct {
	store   cache.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
	run     func(string) models.ChainOutputs
}

func NewChainHandler(store cache.Store, m *metrics.Metrics, logger *zap.Logger) *ChainHandler {
	if store == nil {
		store = cache.NopStore{}
	}
	return &ChainHandler{
		store:   store,
		metrics: m,
		logger:  logger.With(zap.String("component", "chain_handler")),
		run:     pipeline.Run,
	}
}

// DecodeRequest parses a JSON request and enforces that query is a string.
func DecodeRequest(data []byte) (*models.ChainRequest, error) {
	var raw struct {
		RequestID string          `json:"request_id"`
		Query     json.RawMessage `json:"query"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed request: %v", ErrInvalidInput, err)
	}

	if len(raw.Query) == 0 || bytes.Equal(raw.Query, []byte("null")) {
		return &models.ChainRequest{RequestID: raw.RequestID}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	var query string
	if err := json.Unmarshal(raw.Query, &query); err != nil {
		return &models.ChainRequest{RequestID: raw.RequestID}, fmt.Errorf("%w: query must be a string", ErrInvalidInput)
	}

	return &models.ChainRequest{RequestID: raw.RequestID, Query: query}, nil
}

// Process runs the chain for one request, consulting the cache first. Cache
// failures are logged and the chain runs uncached.
func (h *ChainHandler) Process(ctx context.Context, request *models.ChainRequest) (*models.ChainResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidInput)
	}

	start := time.Now()
	key := cache.Key(request.Query)

	outputs, cached, err := h.store.Get(ctx, key)
	if err != nil {
		h.logger.Warn("cache lookup failed",
			zap.String("requestId", request.RequestID),
			zap.Error(err))
		cached = false
	}

	if !cached {
		fresh := h.run(request.Query)
		outputs = &fresh

		if err := h.store.Set(ctx, key, outputs); err != nil {
			h.logger.Warn("cache store failed",
				zap.String("requestId", request.RequestID),
				zap.Error(err))
		}
	}

	h.observe(outputs, cached, time.Since(start))

	h.logger.Info("query processed",
		zap.String("requestId", request.RequestID),
		zap.String("intent", string(outputs.Intent.Label)),
		zap.String("category", string(outputs.Selection.ChosenCategory)),
		zap.Bool("urgent", outputs.Details.Urgent),
		zap.Bool("cached", cached))

	return h.createResponse(request, outputs, cached), nil
}

// RejectInvalid records an input-boundary rejection and builds the error reply
func (h *ChainHandler) RejectInvalid(request *models.ChainRequest, err error) *models.ChainResponse {
	if h.metrics != nil {
		h.metrics.InvalidRequests.Inc()
	}

	requestID := ""
	if request != nil {
		requestID = request.RequestID
	}
	h.logger.Warn("invalid request",
		zap.String("requestId", requestID),
		zap.Error(err))

	return CreateErrorResponse(requestID, models.ErrorInvalidInput, err.Error())
}

func (h *ChainHandler) observe(outputs *models.ChainOutputs, cached bool, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}
	h.metrics.QueriesTotal.WithLabelValues(string(outputs.Selection.ChosenCategory)).Inc()
	if outputs.Details.Urgent {
		h.metrics.UrgentTotal.Inc()
	}
	if cached {
		h.metrics.CacheHitsTotal.Inc()
	}
	h.metrics.Duration.Observe(elapsed.Seconds())
}

func (h *ChainHandler) createResponse(request *models.ChainRequest, outputs *models.ChainOutputs, cached bool) *models.ChainResponse {
	checklist := details.ChecklistFor(outputs.Selection.ChosenCategory)

	return &models.ChainResponse{
		RequestID:  request.RequestID,
		Status:     models.StatusOK,
		Intent:     &outputs.Intent,
		Candidates: outputs.Candidates,
		Selection:  &outputs.Selection,
		Details:    &outputs.Details,
		Response:   outputs.Response,
		Checklist:  &checklist,
		Cached:     cached,
	}
}

const FallbackMessage = "I'm sorry, I couldn't read your request. Please try again."

func CreateErrorResponse(requestID, errorCode, errorMessage string) *models.ChainResponse {
	return &models.ChainResponse{
		RequestID:    requestID,
		Status:       models.StatusError,
		Response:     FallbackMessage,
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}
}
