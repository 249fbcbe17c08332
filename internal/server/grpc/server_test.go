package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/wheel/internal/catalog"
	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/logging"
	"github.com/dmitrijs2005/wheel/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newStore(t *testing.T) *garage.Store {
	t.Helper()
	s, err := garage.NewStore(catalog.Builtin())
	require.NoError(t, err)
	return s
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, newStore(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, newStore(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

type recorder struct {
	mu    sync.Mutex
	calls map[string]string
}

func (r *recorder) ObserveGRPC(method, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[method] = code
}

func (r *recorder) code(method string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

// startBufconn serves srv on an in-memory listener and returns a dialed
// connection.
func startBufconn(t *testing.T, srv *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestServer_EndToEnd(t *testing.T) {
	rec := &recorder{calls: map[string]string{}}
	conn := startBufconn(t, NewGRPCServer("bufnet", logging.Nop{}, newStore(t), rec))
	c := wire.NewGarageServiceClient(conn)
	ctx := context.Background()

	deck, err := c.GetSwipeDeck(ctx, &wire.GetSwipeDeckRequest{})
	require.NoError(t, err)
	require.Len(t, deck.Cars, 1)
	assert.Equal(t, "Prius", deck.Cars[0].Model)

	b, err := c.SetBudget(ctx, &wire.SetBudgetRequest{Budget: 600})
	require.NoError(t, err)
	assert.Equal(t, 3, b.DeckSize)

	_, err = c.SetBudget(ctx, &wire.SetBudgetRequest{Budget: -5})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	tg, err := c.ToggleMustHave(ctx, &wire.ToggleMustHaveRequest{Feature: "awd"})
	require.NoError(t, err)
	assert.True(t, tg.Enabled)
	assert.Equal(t, 2, tg.DeckSize)

	liked, err := c.LikeCar(ctx, &wire.DecisionRequest{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "RAV4 Hybrid", liked.Car.Model)
	assert.Equal(t, 1, liked.DeckSize)

	_, err = c.NopeCar(ctx, &wire.DecisionRequest{ID: 1})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.LikeCar(ctx, &wire.DecisionRequest{ID: 42})
	assert.Equal(t, codes.NotFound, status.Code(err))

	st, err := c.GetState(ctx, &wire.GetStateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 600.0, st.Budget)
	assert.Equal(t, []int64{1}, st.SeenCarIDs)
	assert.True(t, st.MustHaves["awd"])
	assert.Equal(t, 3, st.TotalCars)
	assert.Equal(t, 1, st.DeckSize)

	assert.Equal(t, "OK", rec.code("/wheel.v1.GarageService/GetState"))
	assert.Equal(t, "AlreadyExists", rec.code("/wheel.v1.GarageService/NopeCar"))
}

func TestServer_EchoesRequestID(t *testing.T) {
	conn := startBufconn(t, NewGRPCServer("bufnet", logging.Nop{}, newStore(t), nil))
	c := wire.NewGarageServiceClient(conn)

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "req-1")
	var header metadata.MD
	_, err := c.ListCars(ctx, &wire.ListCarsRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1"}, header.Get(common.RequestIDHeaderName))
}

func TestServer_Health(t *testing.T) {
	conn := startBufconn(t, NewGRPCServer("bufnet", logging.Nop{}, newStore(t), nil))

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: wire.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
