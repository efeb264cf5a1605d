package handler

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/clinic"
	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/model"
	"clinic-scheduler/internal/session"
)

func (h *Handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := h.svc.Register(ctx, clinic.Registration{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		Role:           model.Role(req.UserType),
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
	})
	if err != nil {
		slog.Warn("rpc register rejected", "email", req.Email, "error", err)
		return nil, toStatus(err, "register")
	}
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	// a missing field is just another failed login
	if req.Email == "" || req.Password == "" || req.UserType == "" {
		return nil, toStatus(clinic.ErrInvalidCredentials, "login")
	}

	u, err := h.svc.Authenticate(ctx, req.Email, req.Password, model.Role(req.UserType))
	if err != nil {
		slog.Warn("rpc login rejected", "email", req.Email, "error", err)
		return nil, toStatus(err, "login")
	}

	id := session.FromUser(u)
	tok, err := h.codec.Encode(id)
	if err != nil {
		return nil, toStatus(err, "login")
	}
	return &pb.LoginResponse{Token: tok, UserId: u.ID, Name: u.Name, UserType: string(u.Role)}, nil
}

func (h *Handler) ListDoctors(ctx context.Context, _ *pb.ListDoctorsRequest) (*pb.ListDoctorsResponse, error) {
	if d := session.RequireRole(session.FromContext(ctx), model.RolePatient); !d.Allowed {
		return nil, denied(d)
	}

	docs, err := h.svc.ListByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, toStatus(err, "list doctors")
	}
	out := make([]*pb.User, len(docs))
	for i := range docs {
		out[i] = userToProto(&docs[i])
	}
	return &pb.ListDoctorsResponse{Doctors: out}, nil
}

// password hash never leaves the process
func userToProto(u *model.User) *pb.User {
	return &pb.User{
		Id:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		UserType:       string(u.Role),
		Specialization: u.Specialization,
		LicenseNumber:  u.LicenseNumber,
	}
}
