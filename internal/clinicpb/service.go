package clinicpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ClinicService_Register_FullMethodName           = "/clinic.v1.ClinicService/Register"
	ClinicService_Login_FullMethodName              = "/clinic.v1.ClinicService/Login"
	ClinicService_ListDoctors_FullMethodName        = "/clinic.v1.ClinicService/ListDoctors"
	ClinicService_BookAppointment_FullMethodName    = "/clinic.v1.ClinicService/BookAppointment"
	ClinicService_PatientDashboard_FullMethodName   = "/clinic.v1.ClinicService/PatientDashboard"
	ClinicService_DoctorDashboard_FullMethodName    = "/clinic.v1.ClinicService/DoctorDashboard"
	ClinicService_AppointmentHistory_FullMethodName = "/clinic.v1.ClinicService/AppointmentHistory"
)

type ClinicServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ListDoctors(context.Context, *ListDoctorsRequest) (*ListDoctorsResponse, error)
	BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error)
	PatientDashboard(context.Context, *PatientDashboardRequest) (*PatientDashboardResponse, error)
	DoctorDashboard(context.Context, *DoctorDashboardRequest) (*DoctorDashboardResponse, error)
	AppointmentHistory(context.Context, *AppointmentHistoryRequest) (*AppointmentHistoryResponse, error)
}

// UnimplementedClinicServiceServer can be embedded to stay compatible when
// methods are added.
type UnimplementedClinicServiceServer struct{}

func (UnimplementedClinicServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedClinicServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedClinicServiceServer) ListDoctors(context.Context, *ListDoctorsRequest) (*ListDoctorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDoctors not implemented")
}
func (UnimplementedClinicServiceServer) BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BookAppointment not implemented")
}
func (UnimplementedClinicServiceServer) PatientDashboard(context.Context, *PatientDashboardRequest) (*PatientDashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PatientDashboard not implemented")
}
func (UnimplementedClinicServiceServer) DoctorDashboard(context.Context, *DoctorDashboardRequest) (*DoctorDashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DoctorDashboard not implemented")
}
func (UnimplementedClinicServiceServer) AppointmentHistory(context.Context, *AppointmentHistoryRequest) (*AppointmentHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AppointmentHistory not implemented")
}

// methodHandler matches grpc.MethodDesc.Handler.
type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unary[Req, Resp any](method string, call func(ClinicServiceServer, context.Context, *Req) (*Resp, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(ClinicServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		})
	}
}

var ClinicService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "clinic.v1.ClinicService",
	HandlerType: (*ClinicServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(ClinicService_Register_FullMethodName, ClinicServiceServer.Register)},
		{MethodName: "Login", Handler: unary(ClinicService_Login_FullMethodName, ClinicServiceServer.Login)},
		{MethodName: "ListDoctors", Handler: unary(ClinicService_ListDoctors_FullMethodName, ClinicServiceServer.ListDoctors)},
		{MethodName: "BookAppointment", Handler: unary(ClinicService_BookAppointment_FullMethodName, ClinicServiceServer.BookAppointment)},
		{MethodName: "PatientDashboard", Handler: unary(ClinicService_PatientDashboard_FullMethodName, ClinicServiceServer.PatientDashboard)},
		{MethodName: "DoctorDashboard", Handler: unary(ClinicService_DoctorDashboard_FullMethodName, ClinicServiceServer.DoctorDashboard)},
		{MethodName: "AppointmentHistory", Handler: unary(ClinicService_AppointmentHistory_FullMethodName, ClinicServiceServer.AppointmentHistory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clinic/v1/clinic.proto",
}

func RegisterClinicServiceServer(s grpc.ServiceRegistrar, srv ClinicServiceServer) {
	s.RegisterService(&ClinicService_ServiceDesc, srv)
}

// ServerCodec is the server option that makes grpc use Codec.
func ServerCodec() grpc.ServerOption { return grpc.ForceServerCodec(Codec{}) }

type ClinicServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClinicServiceClient(cc grpc.ClientConnInterface) *ClinicServiceClient {
	return &ClinicServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ClinicServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, ClinicService_Register_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, ClinicService_Login_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) ListDoctors(ctx context.Context, in *ListDoctorsRequest, opts ...grpc.CallOption) (*ListDoctorsResponse, error) {
	return invoke[ListDoctorsResponse](ctx, c.cc, ClinicService_ListDoctors_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error) {
	return invoke[BookAppointmentResponse](ctx, c.cc, ClinicService_BookAppointment_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) PatientDashboard(ctx context.Context, in *PatientDashboardRequest, opts ...grpc.CallOption) (*PatientDashboardResponse, error) {
	return invoke[PatientDashboardResponse](ctx, c.cc, ClinicService_PatientDashboard_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) DoctorDashboard(ctx context.Context, in *DoctorDashboardRequest, opts ...grpc.CallOption) (*DoctorDashboardResponse, error) {
	return invoke[DoctorDashboardResponse](ctx, c.cc, ClinicService_DoctorDashboard_FullMethodName, in, opts)
}

func (c *ClinicServiceClient) AppointmentHistory(ctx context.Context, in *AppointmentHistoryRequest, opts ...grpc.CallOption) (*AppointmentHistoryResponse, error) {
	return invoke[AppointmentHistoryResponse](ctx, c.cc, ClinicService_AppointmentHistory_FullMethodName, in, opts)
}
