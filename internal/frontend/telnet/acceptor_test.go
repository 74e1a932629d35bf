package telnet

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/testutil"
)

// echoHandler echoes lines back until the client says quit.
type echoHandler struct {
	sessionCount atomic.Int32
	mu           sync.Mutex
	ids          []string
}

func (h *echoHandler) HandleSession(ctx context.Context, conn *Conn) error {
	h.sessionCount.Add(1)
	id, _ := SessionIDFromContext(ctx)
	h.mu.Lock()
	h.ids = append(h.ids, id)
	h.mu.Unlock()
	for {
		line, err := conn.ReadLine()
		if err != nil {
			return err
		}
		if line == "quit" {
			return conn.WriteText("Bye!\n")
		}
		_ = conn.WriteLine("echo: " + line)
	}
}

func startAcceptor(t *testing.T, handler SessionHandler) *Acceptor {
	t.Helper()
	cfg := config.TelnetConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	acc := NewAcceptor(cfg, handler, zaptest.NewLogger(t))

	errCh := make(chan error, 1)
	go func() { errCh <- acc.ListenAndServe() }()
	testutil.WaitFor(t, testutil.DefaultTimeout, func() bool {
		return acc.IsRunning() && acc.Addr() != ""
	})

	t.Cleanup(func() {
		acc.Stop()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("acceptor did not stop in time")
		}
	})
	return acc
}

func TestAcceptorEchoSession(t *testing.T) {
	handler := &echoHandler{}
	acc := startAcceptor(t, handler)

	client := testutil.NewTelnetClient(t, acc.Addr())
	client.Send("hello")
	assert.Contains(t, client.ReadUntil("echo: hello", testutil.DefaultTimeout), "echo: hello")

	client.Send("quit")
	assert.Contains(t, client.ExpectClosed(testutil.DefaultTimeout), "Bye!\r\n")
	assert.Equal(t, int32(1), handler.sessionCount.Load())
}

func TestAcceptorMultipleClientsGetDistinctSessionIDs(t *testing.T) {
	handler := &echoHandler{}
	acc := startAcceptor(t, handler)

	const numClients = 3
	for i := 0; i < numClients; i++ {
		client := testutil.NewTelnetClient(t, acc.Addr())
		client.Send("quit")
		client.ExpectClosed(testutil.DefaultTimeout)
	}

	assert.Equal(t, int32(numClients), handler.sessionCount.Load())
	handler.mu.Lock()
	defer handler.mu.Unlock()
	seen := map[string]bool{}
	for _, id := range handler.ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}

func TestAcceptorStopInterruptsIdleSession(t *testing.T) {
	started := make(chan struct{})
	done := make(chan error, 1)
	handler := SessionHandlerFunc(func(ctx context.Context, conn *Conn) error {
		close(started)
		_, err := conn.ReadLine()
		done <- err
		return err
	})
	cfg := config.TelnetConfig{Host: "127.0.0.1", Port: 0}
	acc := NewAcceptor(cfg, handler, zaptest.NewLogger(t))
	go func() { _ = acc.ListenAndServe() }()
	testutil.WaitFor(t, testutil.DefaultTimeout, func() bool { return acc.Addr() != "" })

	testutil.NewTelnetClient(t, acc.Addr())
	select {
	case <-started:
	case <-time.After(testutil.DefaultTimeout):
		t.Fatal("session did not start")
	}

	stopped := make(chan struct{})
	go func() {
		acc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not interrupt the idle session")
	}
	assert.Error(t, <-done)
	assert.False(t, acc.IsRunning())
}

func TestAcceptorStopInterruptsReadAfterCancel(t *testing.T) {
	started := make(chan struct{})
	done := make(chan error, 1)
	handler := SessionHandlerFunc(func(ctx context.Context, conn *Conn) error {
		close(started)
		<-ctx.Done()
		_, err := conn.ReadLine()
		done <- err
		return err
	})
	cfg := config.TelnetConfig{Host: "127.0.0.1", Port: 0, ReadTimeout: time.Hour}
	acc := NewAcceptor(cfg, handler, zaptest.NewLogger(t))
	go func() { _ = acc.ListenAndServe() }()
	testutil.WaitFor(t, testutil.DefaultTimeout, func() bool { return acc.Addr() != "" })

	testutil.NewTelnetClient(t, acc.Addr())
	select {
	case <-started:
	case <-time.After(testutil.DefaultTimeout):
		t.Fatal("session did not start")
	}

	stopped := make(chan struct{})
	go func() {
		acc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop waited on the read timeout")
	}
	assert.ErrorIs(t, <-done, ErrInterrupted)
}

func TestAcceptorStopBeforeListen(t *testing.T) {
	acc := NewAcceptor(config.TelnetConfig{Host: "127.0.0.1"}, &echoHandler{}, zaptest.NewLogger(t))
	acc.Stop()
	assert.NoError(t, acc.ListenAndServe())
}
