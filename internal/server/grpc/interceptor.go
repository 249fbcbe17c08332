package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned by requestIDInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestIDInterceptor keeps the caller's x-request-id or mints one, stores
// it in the context and echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, requestIDKey, requestID)

	// fails only outside a real transport stream, e.g. in direct calls
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
		"request_id", RequestIDFromContext(ctx),
	}
	if err != nil {
		s.logger.Warn(ctx, "gRPC call failed", append(args, "error", err.Error())...)
	} else {
		s.logger.Debug(ctx, "gRPC call", args...)
	}

	if s.metrics != nil {
		s.metrics.ObserveGRPC(info.FullMethod, code.String())
	}

	return resp, err
}
