package wire

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeGarage embeds the interface so unused methods panic.
type fakeGarage struct {
	GarageServiceServer
	budget float64
}

func (f *fakeGarage) SetBudget(ctx context.Context, in *SetBudgetRequest) (*SetBudgetResponse, error) {
	if in.Budget < 0 {
		return nil, status.Error(codes.InvalidArgument, "negative budget")
	}
	f.budget = in.Budget
	return &SetBudgetResponse{Budget: in.Budget, DeckSize: 2}, nil
}

func (f *fakeGarage) GetCar(ctx context.Context, in *GetCarRequest) (*GetCarResponse, error) {
	if in.ID != 2 {
		return &GetCarResponse{}, nil
	}
	v := FromVehicle(garage.Vehicle{ID: 2, Make: "Toyota", Model: "Prius", Year: 2025, Price: 31200, Features: []string{"AWD"}})
	return &GetCarResponse{Found: true, Car: &v}, nil
}

func dial(t *testing.T, srv GarageServiceServer, opts ...grpc.ServerOption) GarageServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterGarageServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewGarageServiceClient(conn)
}

// The messages are plain structs, so a successful call proves the JSON
// codec was negotiated.
func TestClient_RoundTripOverJSON(t *testing.T) {
	f := &fakeGarage{}
	c := dial(t, f)

	resp, err := c.SetBudget(context.Background(), &SetBudgetRequest{Budget: 600})
	require.NoError(t, err)
	assert.Equal(t, 600.0, resp.Budget)
	assert.Equal(t, 2, resp.DeckSize)
	assert.Equal(t, 600.0, f.budget)
}

func TestClient_StatusErrorsPassThrough(t *testing.T) {
	c := dial(t, &fakeGarage{})

	_, err := c.SetBudget(context.Background(), &SetBudgetRequest{Budget: -1})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestClient_GetCar(t *testing.T) {
	c := dial(t, &fakeGarage{})

	miss, err := c.GetCar(context.Background(), &GetCarRequest{ID: 9})
	require.NoError(t, err)
	assert.False(t, miss.Found)
	assert.Nil(t, miss.Car)

	hit, err := c.GetCar(context.Background(), &GetCarRequest{ID: 2})
	require.NoError(t, err)
	require.True(t, hit.Found)
	want := Vehicle{ID: 2, Make: "Toyota", Model: "Prius", Year: 2025, Price: 31200, MonthlyPayment: 31200.0 / 72, Features: []string{"AWD"}}
	if diff := cmp.Diff(want, *hit.Car); diff != "" {
		t.Errorf("GetCar mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceDesc_InterceptorSeesFullMethod(t *testing.T) {
	var seen string
	ic := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return h(ctx, req)
	}
	c := dial(t, &fakeGarage{}, grpc.UnaryInterceptor(ic))

	_, err := c.GetCar(context.Background(), &GetCarRequest{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "/wheel.v1.GarageService/GetCar", seen)
}

func TestServiceDesc_MethodNames(t *testing.T) {
	var names []string
	for _, m := range GarageServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	want := []string{"GetState", "SetBudget", "ToggleMustHave", "GetSwipeDeck", "LikeCar", "NopeCar", "GetCar", "ListCars", "ListLiked"}
	assert.Equal(t, want, names)
}

func TestVehicle_Conversions(t *testing.T) {
	g := garage.Vehicle{ID: 1, Make: "Toyota", Model: "RAV4 Hybrid", Year: 2025, Price: 34500, Description: "d", Features: []string{"AWD"}, Image: "https://x/y.png"}

	w := FromVehicle(g)
	assert.InDelta(t, 479.1666, w.MonthlyPayment, 0.001)

	back := w.ToGarage()
	if diff := cmp.Diff(g, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	w.Features[0] = "changed"
	assert.Equal(t, "AWD", g.Features[0])
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&DecisionRequest{ID: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3}`, string(b))

	var got DecisionRequest
	require.NoError(t, c.Unmarshal(b, &got))
	assert.EqualValues(t, 3, got.ID)
}
