package queue

import (
	"context"
	"fmt"
	"log/slog"

	"artdesk.app/api/internal/service"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// Producer enqueues invitation notices for the mail worker.
type Producer interface {
	SendInvitation(ctx context.Context, notice service.InvitationNotice) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) SendInvitation(ctx context.Context, notice service.InvitationNotice) error {
	fields := map[string]any{
		"invitation_id": notice.InvitationID,
		"email":         notice.Email,
		"client_name":   notice.ClientName,
		"inviter_name":  notice.InviterName,
		"role":          string(notice.Role),
		"token":         notice.Token,
		"attempt":       1,
	}

	// Propagate the trace so the worker's delivery span links back to
	// the request that created the invitation.
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		fields["trace_id"] = span.SpanContext().TraceID().String()
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue invitation notice: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued invitation notice",
		"invitation_id", notice.InvitationID,
		"email", notice.Email,
	)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
