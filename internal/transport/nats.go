package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avvvet/supportchain/internal/config"
	"github.com/avvvet/supportchain/internal/handlers"
	"github.com/avvvet/supportchain/internal/models"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type NATSTransport struct {
	conn    *nats.Conn
	sub     *nats.Subscription
	config  *config.Config
	handler *handlers.ChainHandler
	logger  *zap.Logger
}

func NewNATSTransport(cfg *config.Config, handler *handlers.ChainHandler, logger *zap.Logger) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // Infinite reconnects
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", zap.String("url", cfg.NatsURL))

	return &NATSTransport{
		conn:    conn,
		config:  cfg,
		handler: handler,
		logger:  logger.With(zap.String("component", "nats_transport")),
	}, nil
}

func (nt *NATSTransport) Start() error {
	sub, err := nt.conn.Subscribe(nt.config.NatsRequestSubject, nt.handleChainRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}
	nt.sub = sub

	nt.logger.Info("subscribed", zap.String("subject", nt.config.NatsRequestSubject))
	return nil
}

func (nt *NATSTransport) handleChainRequest(msg *nats.Msg) {
	request, err := handlers.DecodeRequest(msg.Data)
	if err != nil {
		nt.reply(msg, nt.handler.RejectInvalid(request, err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.RequestTimeout)
	defer cancel()

	response, err := nt.handler.Process(ctx, request)
	if err != nil {
		nt.logger.Error("error processing query",
			zap.String("requestId", request.RequestID),
			zap.Error(err))
		nt.reply(msg, handlers.CreateErrorResponse(request.RequestID, models.ErrorInternal, err.Error()))
		return
	}

	nt.reply(msg, response)
}

func (nt *NATSTransport) reply(msg *nats.Msg, response *models.ChainResponse) {
	if err := nt.sendResponse(msg, response); err != nil {
		nt.logger.Error("error sending response",
			zap.String("requestId", response.RequestID),
			zap.Error(err))
	}
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.ChainResponse) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	nt.logger.Debug("sending response",
		zap.String("requestId", response.RequestID),
		zap.String("status", response.Status))

	if err := msg.Respond(responseData); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}
	return nil
}

// Close unsubscribes and closes the connection. Safe to call twice.
func (nt *NATSTransport) Close() error {
	if nt.sub != nil {
		if err := nt.sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) && !errors.Is(err, nats.ErrBadSubscription) {
			nt.logger.Warn("unsubscribe failed", zap.Error(err))
		}
		nt.sub = nil
	}
	if nt.conn != nil && !nt.conn.IsClosed() {
		nt.conn.Close()
		nt.logger.Info("NATS connection closed")
	}
	return nil
}
