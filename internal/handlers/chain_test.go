package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avvvet/supportchain/internal/cache"
	"github.com/avvvet/supportchain/internal/metrics"
	"github.com/avvvet/supportchain/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// ==========================
// Test Helper Functions
// ==========================

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*models.ChainOutputs, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, *models.ChainOutputs) error {
	return errors.New("connection refused")
}

func (failingStore) Close() error { return nil }

func newTestHandler(t *testing.T, store cache.Store) (*ChainHandler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewChainHandler(store, m, zaptest.NewLogger(t)), m
}

func newRedisStore(t *testing.T) cache.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := cache.NewRedisStore(context.Background(), "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// ==========================
// DecodeRequest
// ==========================

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantQuery string
		wantErr   bool
	}{
		{"valid", `{"request_id":"r1","query":"forgot my password"}`, "forgot my password", false},
		{"empty string is valid", `{"request_id":"r2","query":""}`, "", false},
		{"number", `{"request_id":"r3","query":123}`, "", true},
		{"object", `{"request_id":"r4","query":{"text":"hi"}}`, "", true},
		{"array", `{"request_id":"r5","query":["hi"]}`, "", true},
		{"null", `{"request_id":"r6","query":null}`, "", true},
		{"missing", `{"request_id":"r7"}`, "", true},
		{"malformed", `{"request_id":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, req.Query)
		})
	}
}

func TestDecodeRequest_KeepsRequestIDOnTypeError(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"request_id":"abc","query":42}`))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.NotNil(t, req)
	assert.Equal(t, "abc", req.RequestID)
}

// ==========================
// Process
// ==========================

func TestProcess_Success(t *testing.T) {
	h, m := newTestHandler(t, nil)

	resp, err := h.Process(context.Background(), &models.ChainRequest{
		RequestID: "r1",
		Query:     "My card was stolen and I see unauthorized charges",
	})
	require.NoError(t, err)

	assert.Equal(t, "r1", resp.RequestID)
	assert.Equal(t, models.StatusOK, resp.Status)
	require.NotNil(t, resp.Details)
	assert.True(t, resp.Details.Urgent)
	assert.Contains(t, resp.Response, "1-800")
	require.NotNil(t, resp.Checklist)
	assert.NotEmpty(t, resp.Checklist.Required)
	assert.False(t, resp.Cached)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UrgentTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.QueriesTotal.WithLabelValues(string(resp.Selection.ChosenCategory))))
}

func TestProcess_CacheHit(t *testing.T) {
	h, m := newTestHandler(t, newRedisStore(t))
	req := &models.ChainRequest{RequestID: "r1", Query: "forgot my password"}

	first, err := h.Process(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := h.Process(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)

	assert.Equal(t, first.Selection, second.Selection)
	assert.Equal(t, first.Response, second.Response)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))
}

func TestProcess_CacheFailureDegrades(t *testing.T) {
	h, _ := newTestHandler(t, failingStore{})

	resp, err := h.Process(context.Background(), &models.ChainRequest{Query: "forgot my password"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, resp.Status)
	assert.Equal(t, models.CategoryAccountAccess, resp.Selection.ChosenCategory)
	assert.False(t, resp.Cached)
}

func TestProcess_EmptyQuery(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	resp, err := h.Process(context.Background(), &models.ChainRequest{Query: ""})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneralInformation, resp.Selection.ChosenCategory)
}

func TestProcess_NilRequest(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	_, err := h.Process(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRejectInvalid(t *testing.T) {
	h, m := newTestHandler(t, nil)

	req, err := DecodeRequest([]byte(`{"request_id":"bad","query":7}`))
	resp := h.RejectInvalid(req, err)

	assert.Equal(t, "bad", resp.RequestID)
	assert.Equal(t, models.StatusError, resp.Status)
	require.NotNil(t, resp.ErrorCode)
	assert.Equal(t, models.ErrorInvalidInput, *resp.ErrorCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvalidRequests))

	nilResp := h.RejectInvalid(nil, errors.New("boom"))
	assert.Equal(t, "", nilResp.RequestID)
}
