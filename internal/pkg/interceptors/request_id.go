package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors/constants"
)

// WithRequestID stores the request ID in ctx for downstream calls.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, constants.ContextKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID stored by WithRequestID, falling
// back to incoming gRPC metadata. It returns "" when neither is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(constants.HeaderXRequestId); len(ids) > 0 {
			return ids[0]
		}
	}
	return ""
}

// RequestIDClientInterceptor forwards the request ID as outgoing metadata on
// every unary call.
func RequestIDClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if id := RequestIDFromContext(ctx); id != "" {
			if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(constants.HeaderXRequestId)) == 0 {
				ctx = metadata.AppendToOutgoingContext(ctx, constants.HeaderXRequestId, id)
			}
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
