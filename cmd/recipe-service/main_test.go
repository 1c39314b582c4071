package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServeHTTP_AddrInUse_ReportsError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	srv := &http.Server{Addr: lis.Addr().String(), Handler: http.NotFoundHandler()}

	select {
	case err, ok := <-serveHTTP(srv):
		require.True(t, ok)
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not report listen failure")
	}
}

func TestServeHTTP_Shutdown_ClosesWithoutError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	srv := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	errCh := serveHTTP(srv)

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err, ok := <-errCh:
		require.False(t, ok, "unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP channel not closed after shutdown")
	}
}
