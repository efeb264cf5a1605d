package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/session"
)

// skip auth for these
var open = map[string]bool{
	pb.ClinicService_Register_FullMethodName: true,
	pb.ClinicService_Login_FullMethodName:    true,
}

// Auth resolves the bearer token into a session.Identity on the context.
// Role checks are left to the handlers.
func Auth(codec *session.Codec) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		raw := bearer(ctx)
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		id, err := codec.Decode(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		return next(session.WithIdentity(ctx, id), req)
	}
}

// token from Authorization: Bearer <jwt>
func bearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	const prefix = "bearer "
	if len(v) < len(prefix) || !strings.EqualFold(v[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(v[len(prefix):])
}
