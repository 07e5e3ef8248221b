package shutdown

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"playlist-tool/internal/logger"
)

func TestManager_ShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NewNop())

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("Done should be closed after Shutdown")
	}
}

func TestManager_ShutdownTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.timeout = 10 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	finished := false
	m.Register(Func(func() { finished = true }))
	m.Register(Func(func() { <-block }))

	m.Shutdown()
	assert.True(t, finished, "a stuck component does not block the rest")
}

func TestManager_ListenStopsWithContext(t *testing.T) {
	m := NewManager(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	called := make(chan os.Signal, 1)
	m.Listen(ctx, func(sig os.Signal) { called <- sig })
	cancel()

	select {
	case <-called:
		t.Fatal("onSignal called without a signal")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 130, ExitCode(syscall.SIGINT))
	assert.Equal(t, 143, ExitCode(syscall.SIGTERM))
}
