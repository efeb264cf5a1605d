// Package handler serves clinic.v1.ClinicService over gRPC.
package handler

import (
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-scheduler/internal/clinic"
	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/session"
)

type Handler struct {
	pb.UnimplementedClinicServiceServer
	svc   *clinic.Service
	codec *session.Codec
}

func New(svc *clinic.Service, codec *session.Codec) *Handler {
	return &Handler{svc: svc, codec: codec}
}

// toStatus maps domain errors onto gRPC codes. Anything unexpected is logged
// and reported as Internal without detail.
func toStatus(err error, op string) error {
	switch {
	case errors.Is(err, clinic.ErrDuplicateUser):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, clinic.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, clinic.ErrDoctorNotFound):
		return status.Error(codes.NotFound, "doctor not found")
	case errors.Is(err, clinic.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	slog.Error("rpc failed", "op", op, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func denied(d session.Decision) error {
	if d.Reason == session.DenyWrongRole {
		return status.Error(codes.PermissionDenied, d.Message)
	}
	return status.Error(codes.Unauthenticated, "login required")
}
