package handler_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"clinic-scheduler/internal/auth"
	"clinic-scheduler/internal/clinic"
	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/handler"
	"clinic-scheduler/internal/middleware"
	"clinic-scheduler/internal/session"
	"clinic-scheduler/internal/store"
)

const secret = "test-secret"

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) *pb.ClinicServiceClient {
	t.Helper()

	svc := clinic.New(store.NewMemory(), auth.SHA256Hasher{}, time.UTC).
		WithClock(func() time.Time { return fixedNow })
	codec := session.NewCodec(secret)
	rl := middleware.NewRateLimiter(1000, 1000)
	t.Cleanup(rl.Stop)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		pb.ServerCodec(),
		grpc.ChainUnaryInterceptor(middleware.RateLimit(rl), middleware.Auth(codec)),
	)
	pb.RegisterClinicServiceServer(srv, handler.New(svc, codec))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewClinicServiceClient(conn)
}

func withToken(tok string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+tok)
}

func register(t *testing.T, c *pb.ClinicServiceClient, req *pb.RegisterRequest) string {
	t.Helper()
	resp, err := c.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserId)
	return resp.UserId
}

func login(t *testing.T, c *pb.ClinicServiceClient, email, pw, role string) string {
	t.Helper()
	resp, err := c.Login(context.Background(), &pb.LoginRequest{Email: email, Password: pw, UserType: role})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func alice() *pb.RegisterRequest {
	return &pb.RegisterRequest{Email: "a@x.com", Password: "pw1", Name: "Alice", Phone: "555", UserType: "patient"}
}

func bob() *pb.RegisterRequest {
	return &pb.RegisterRequest{
		Email: "b@x.com", Password: "pw2", Name: "Bob", Phone: "556", UserType: "doctor",
		Specialization: "Cardiology", LicenseNumber: "LIC-9",
	}
}

func code(err error) codes.Code { return status.Code(err) }

func TestRegisterAndLogin(t *testing.T) {
	c := setup(t)
	id := register(t, c, alice())

	resp, err := c.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "pw1", UserType: "patient"})
	require.NoError(t, err)
	assert.Equal(t, id, resp.UserId)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "patient", resp.UserType)
}

func TestRegisterErrors(t *testing.T) {
	c := setup(t)
	register(t, c, alice())

	_, err := c.Register(context.Background(), alice())
	assert.Equal(t, codes.AlreadyExists, code(err))

	missing := bob()
	missing.LicenseNumber = ""
	_, err = c.Register(context.Background(), missing)
	assert.Equal(t, codes.InvalidArgument, code(err))
}

func TestLoginRejects(t *testing.T) {
	c := setup(t)
	register(t, c, alice())

	cases := []struct {
		name string
		req  *pb.LoginRequest
		want codes.Code
	}{
		{"wrong password", &pb.LoginRequest{Email: "a@x.com", Password: "nope", UserType: "patient"}, codes.Unauthenticated},
		{"wrong role", &pb.LoginRequest{Email: "a@x.com", Password: "pw1", UserType: "doctor"}, codes.Unauthenticated},
		{"unknown email", &pb.LoginRequest{Email: "z@x.com", Password: "pw1", UserType: "patient"}, codes.Unauthenticated},
		{"missing role", &pb.LoginRequest{Email: "a@x.com", Password: "pw1"}, codes.Unauthenticated},
		{"missing password", &pb.LoginRequest{Email: "a@x.com", UserType: "patient"}, codes.Unauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Login(context.Background(), tc.req)
			assert.Equal(t, tc.want, code(err))
		})
	}
}

func TestAuthRequired(t *testing.T) {
	c := setup(t)

	_, err := c.PatientDashboard(context.Background(), &pb.PatientDashboardRequest{})
	assert.Equal(t, codes.Unauthenticated, code(err))

	_, err = c.AppointmentHistory(withToken("garbage"), &pb.AppointmentHistoryRequest{})
	assert.Equal(t, codes.Unauthenticated, code(err))
}

func TestWrongRole(t *testing.T) {
	c := setup(t)
	register(t, c, alice())
	register(t, c, bob())
	pt := login(t, c, "a@x.com", "pw1", "patient")
	dt := login(t, c, "b@x.com", "pw2", "doctor")

	_, err := c.DoctorDashboard(withToken(pt), &pb.DoctorDashboardRequest{})
	assert.Equal(t, codes.PermissionDenied, code(err))
	assert.Equal(t, "Doctor access only", status.Convert(err).Message())

	_, err = c.PatientDashboard(withToken(dt), &pb.PatientDashboardRequest{})
	assert.Equal(t, codes.PermissionDenied, code(err))

	_, err = c.BookAppointment(withToken(dt), &pb.BookAppointmentRequest{})
	assert.Equal(t, codes.PermissionDenied, code(err))

	_, err = c.ListDoctors(withToken(dt), &pb.ListDoctorsRequest{})
	assert.Equal(t, codes.PermissionDenied, code(err))
}

func TestListDoctorsHidesPatients(t *testing.T) {
	c := setup(t)
	register(t, c, alice())
	bobID := register(t, c, bob())
	pt := login(t, c, "a@x.com", "pw1", "patient")

	resp, err := c.ListDoctors(withToken(pt), &pb.ListDoctorsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Doctors, 1)
	assert.Equal(t, bobID, resp.Doctors[0].Id)
	assert.Equal(t, "Cardiology", resp.Doctors[0].Specialization)
}

func TestBookingFlow(t *testing.T) {
	c := setup(t)
	aliceID := register(t, c, alice())
	bobID := register(t, c, bob())
	pt := login(t, c, "a@x.com", "pw1", "patient")
	dt := login(t, c, "b@x.com", "pw2", "doctor")

	later := fixedNow.Add(3 * time.Hour)
	tomorrow := fixedNow.Add(24 * time.Hour)
	yesterday := fixedNow.Add(-24 * time.Hour)

	for _, when := range []time.Time{later, tomorrow, yesterday} {
		resp, err := c.BookAppointment(withToken(pt), &pb.BookAppointmentRequest{
			DoctorId: bobID, WhenScheduled: timestamppb.New(when), Reason: "checkup",
		})
		require.NoError(t, err)
		a := resp.Appointment
		assert.Equal(t, aliceID, a.PatientId)
		assert.Equal(t, "Alice", a.PatientName)
		assert.Equal(t, "Bob", a.DoctorName)
		assert.Equal(t, "scheduled", a.Status)
		assert.True(t, when.Equal(a.WhenScheduled.AsTime()))
	}

	pd, err := c.PatientDashboard(withToken(pt), &pb.PatientDashboardRequest{})
	require.NoError(t, err)
	assert.Len(t, pd.Upcoming, 2)
	assert.Len(t, pd.Past, 1)

	dd, err := c.DoctorDashboard(withToken(dt), &pb.DoctorDashboardRequest{})
	require.NoError(t, err)
	require.Len(t, dd.Today, 1)
	require.Len(t, dd.Future, 1)
	assert.True(t, later.Equal(dd.Today[0].WhenScheduled.AsTime()))
	assert.True(t, tomorrow.Equal(dd.Future[0].WhenScheduled.AsTime()))

	hist, err := c.AppointmentHistory(withToken(dt), &pb.AppointmentHistoryRequest{})
	require.NoError(t, err)
	assert.Len(t, hist.Appointments, 3)
}

func TestBookRejects(t *testing.T) {
	c := setup(t)
	register(t, c, alice())
	pt := login(t, c, "a@x.com", "pw1", "patient")
	when := timestamppb.New(fixedNow.Add(time.Hour))

	_, err := c.BookAppointment(withToken(pt), &pb.BookAppointmentRequest{DoctorId: "nope", WhenScheduled: when, Reason: "x"})
	assert.Equal(t, codes.NotFound, code(err))

	_, err = c.BookAppointment(withToken(pt), &pb.BookAppointmentRequest{DoctorId: "nope", Reason: "x"})
	assert.Equal(t, codes.InvalidArgument, code(err))
}
