package interceptors

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/pkg/log"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// capHandler — slog.Handler для захвата последней записи и её атрибутов.
// Считает записи по тексту сообщения.
type capHandler struct {
	mu      sync.Mutex
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   map[string]int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	if h.count == nil {
		h.count = make(map[string]int)
	}
	h.count[r.Message]++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.base = append(h.base, attrs...)
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

const listMethod = "/recipes.v1.RecipeService/ListRecipes"

func TestUnaryLoggingInterceptor_UsesIncomingRequestID(t *testing.T) {
	t.Parallel()

	h := &capHandler{}

	md := metadata.New(map[string]string{RequestIDKey: "rid-123"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	ctx = peer.NewContext(ctx, &peer.Peer{
		Addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50053},
	})

	info := &grpc.UnaryServerInfo{FullMethod: listMethod}

	resp, err := UnaryLoggingInterceptor(slog.New(h))(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		time.Sleep(2 * time.Millisecond)
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", resp)

	require.Equal(t, "grpc", h.lastMsg)
	require.Equal(t, slog.LevelInfo, h.lastLvl)
	require.Equal(t, "rid-123", h.attrs["request_id"])
	require.Equal(t, listMethod, h.attrs["method"])
	require.Equal(t, "127.0.0.1:50053", h.attrs["peer"])
	require.Equal(t, "OK", h.attrs["code"])

	d, ok := h.attrs["dur"].(time.Duration)
	require.True(t, ok, "dur attr: %#v", h.attrs["dur"])
	require.Greater(t, d, time.Duration(0))
}

func TestUnaryLoggingInterceptor_GeneratesRequestID(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	info := &grpc.UnaryServerInfo{FullMethod: listMethod}

	_, err := UnaryLoggingInterceptor(slog.New(h))(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad filter")
	})
	require.Error(t, err)

	require.Equal(t, "InvalidArgument", h.attrs["code"])
	require.Equal(t, slog.LevelInfo, h.lastLvl)
	require.Equal(t, "-", h.attrs["peer"])

	rid, _ := h.attrs["request_id"].(string)
	_, parseErr := uuid.Parse(rid)
	require.NoError(t, parseErr)
}

func TestUnaryLoggingInterceptor_ServerErrorsLoggedAsError(t *testing.T) {
	t.Parallel()

	for _, code := range []codes.Code{codes.Internal, codes.Unavailable, codes.Unknown} {
		h := &capHandler{}
		info := &grpc.UnaryServerInfo{FullMethod: listMethod}

		_, _ = UnaryLoggingInterceptor(slog.New(h))(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(code, "x")
		})

		require.Equal(t, slog.LevelError, h.lastLvl, code.String())
	}
}

func TestUnaryLoggingInterceptor_PutsLoggerIntoContext(t *testing.T) {
	t.Parallel()

	h := &capHandler{}

	md := metadata.New(map[string]string{RequestIDKey: "abc"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/recipes.v1.RecipeService/GetRecipe"}

	_, err := UnaryLoggingInterceptor(slog.New(h))(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		log.From(ctx).Info("handler", slog.String("marker", "1"))
		return "ok", nil
	})
	require.NoError(t, err)

	require.Equal(t, 1, h.count["handler"])
	require.Equal(t, "abc", h.attrs["request_id"])
	require.Equal(t, info.FullMethod, h.attrs["method"])
}

func TestRecover_PanicToInternal(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	info := &grpc.UnaryServerInfo{FullMethod: "/recipes.v1.RecipeService/WillPanic"}

	resp, err := Recover(slog.New(h))(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	require.Nil(t, resp)
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, err.Error(), "boom")

	require.Equal(t, slog.LevelError, h.lastLvl)
	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, info.FullMethod, h.attrs["method"])
	require.NotEmpty(t, h.attrs["panic"])

	stack, ok := h.attrs["stack"].(string)
	require.True(t, ok)
	require.NotEmpty(t, stack)
}

func TestRecover_PrefersContextLogger(t *testing.T) {
	t.Parallel()

	base, fromCtx := &capHandler{}, &capHandler{}
	ctx := log.Into(context.Background(), slog.New(fromCtx))
	info := &grpc.UnaryServerInfo{FullMethod: "/recipes.v1.RecipeService/WillPanic"}

	_, err := Recover(slog.New(base))(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})
	require.Error(t, err)

	require.Equal(t, "panic_recovered", fromCtx.lastMsg)
	require.Empty(t, base.lastMsg)
}

func TestRecover_NoPanic_PassThrough(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	info := &grpc.UnaryServerInfo{FullMethod: listMethod}

	resp, err := Recover(slog.New(h))(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.Empty(t, h.lastMsg)
}

// fakeStream — минимальный grpc.ServerStream для StreamRecover.
type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s fakeStream) Context() context.Context { return s.ctx }

func TestStreamRecover_PanicToInternal(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	info := &grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch", IsServerStream: true}

	err := StreamRecover(slog.New(h))(nil, fakeStream{ctx: context.Background()}, info, func(srv any, ss grpc.ServerStream) error {
		panic("stream boom")
	})

	require.Equal(t, codes.Internal, status.Code(err))
	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, info.FullMethod, h.attrs["method"])
}

func TestWithTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	const d = 30 * time.Millisecond

	start := time.Now()
	_, err := WithTimeout(d)(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: listMethod},
		func(ctx context.Context, req any) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, time.Since(start), d)
}

func TestWithTimeout_KeepsClientDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	pdl, _ := parent.Deadline()

	var (
		childDL time.Time
		hasDL   bool
	)
	resp, err := WithTimeout(time.Second)(parent, "req", &grpc.UnaryServerInfo{FullMethod: listMethod},
		func(ctx context.Context, req any) (any, error) {
			childDL, hasDL = ctx.Deadline()
			return "ok", nil
		},
	)

	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.True(t, hasDL)
	require.WithinDuration(t, pdl, childDL, time.Millisecond)
}

func TestWithTimeout_ZeroDuration_PassThrough(t *testing.T) {
	t.Parallel()

	var hasDL bool
	_, err := WithTimeout(0)(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: listMethod},
		func(ctx context.Context, req any) (any, error) {
			_, hasDL = ctx.Deadline()
			return "ok", nil
		},
	)

	require.NoError(t, err)
	require.False(t, hasDL)
}
