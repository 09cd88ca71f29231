package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	taskStarted := make(chan struct{})
	task := func(ctx context.Context) error {
		close(taskStarted)
		<-ctx.Done()
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, time.Second, zap.NewNop(), task) }()

	<-taskStarted
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServe_TaskFailureStopsServer(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	boom := errors.New("watcher died")

	err := Serve(context.Background(), srv, time.Second, zap.NewNop(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
