package handler

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/model"
	"clinic-scheduler/internal/session"
)

func (h *Handler) BookAppointment(ctx context.Context, req *pb.BookAppointmentRequest) (*pb.BookAppointmentResponse, error) {
	who := session.FromContext(ctx)
	if d := session.RequireRole(who, model.RolePatient); !d.Allowed {
		return nil, denied(d)
	}
	if req.WhenScheduled == nil {
		return nil, status.Error(codes.InvalidArgument, "when_scheduled required")
	}
	if err := req.WhenScheduled.CheckValid(); err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad when_scheduled")
	}

	apt, err := h.svc.Book(ctx, who, req.DoctorId, req.WhenScheduled.AsTime(), req.Reason)
	if err != nil {
		slog.Warn("rpc booking rejected", "patient_id", who.UserID, "doctor_id", req.DoctorId, "error", err)
		return nil, toStatus(err, "book")
	}
	return &pb.BookAppointmentResponse{Appointment: toProto(apt)}, nil
}

func (h *Handler) PatientDashboard(ctx context.Context, _ *pb.PatientDashboardRequest) (*pb.PatientDashboardResponse, error) {
	who := session.FromContext(ctx)
	if d := session.RequireRole(who, model.RolePatient); !d.Allowed {
		return nil, denied(d)
	}

	v, err := h.svc.PatientView(ctx, who.UserID)
	if err != nil {
		return nil, toStatus(err, "patient dashboard")
	}
	return &pb.PatientDashboardResponse{Upcoming: toProtoList(v.Upcoming), Past: toProtoList(v.Past)}, nil
}

func (h *Handler) DoctorDashboard(ctx context.Context, _ *pb.DoctorDashboardRequest) (*pb.DoctorDashboardResponse, error) {
	who := session.FromContext(ctx)
	if d := session.RequireRole(who, model.RoleDoctor); !d.Allowed {
		return nil, denied(d)
	}

	v, err := h.svc.DoctorView(ctx, who.UserID)
	if err != nil {
		return nil, toStatus(err, "doctor dashboard")
	}
	return &pb.DoctorDashboardResponse{Today: toProtoList(v.Today), Future: toProtoList(v.Future)}, nil
}

func (h *Handler) AppointmentHistory(ctx context.Context, _ *pb.AppointmentHistoryRequest) (*pb.AppointmentHistoryResponse, error) {
	who := session.FromContext(ctx)
	if d := session.RequireAuthenticated(who); !d.Allowed {
		return nil, denied(d)
	}

	list, err := h.svc.History(ctx, who)
	if err != nil {
		return nil, toStatus(err, "history")
	}
	return &pb.AppointmentHistoryResponse{Appointments: toProtoList(list)}, nil
}

func toProtoList(list []model.Appointment) []*pb.Appointment {
	out := make([]*pb.Appointment, len(list))
	for i := range list {
		out[i] = toProto(&list[i])
	}
	return out
}

func toProto(a *model.Appointment) *pb.Appointment {
	p := &pb.Appointment{
		Id:          a.ID,
		PatientId:   a.PatientID,
		PatientName: a.PatientName,
		DoctorId:    a.DoctorID,
		DoctorName:  a.DoctorName,
		Reason:      a.Reason,
		Status:      a.Status,
	}
	if !a.WhenScheduled.IsZero() {
		p.WhenScheduled = timestamppb.New(a.WhenScheduled)
	}
	if !a.CreatedAt.IsZero() {
		p.CreatedAt = timestamppb.New(a.CreatedAt)
	}
	return p
}
