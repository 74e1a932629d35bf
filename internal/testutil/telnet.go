// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"
)

// DefaultTimeout bounds every blocking client operation.
const DefaultTimeout = 2 * time.Second

// TelnetClient drives a Telnet server from a test. Everything read is
// kept so assertions can inspect the whole exchange.
type TelnetClient struct {
	conn       net.Conn
	t          *testing.T
	transcript strings.Builder
	unread     int
}

// NewTelnetClient dials the given address and returns a test client.
//
// Precondition: addr must be a valid "host:port" string with a listening server.
// Postcondition: Returns a connected TelnetClient or fails the test.
func NewTelnetClient(t *testing.T, addr string) *TelnetClient {
	t.Helper()

	conn, err := net.DialTimeout("tcp", addr, DefaultTimeout)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &TelnetClient{conn: conn, t: t}
}

// ReadUntil reads until the output received since the previous match
// contains substr, and returns that output.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns the new output containing substr, or fails on timeout.
func (c *TelnetClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	tmp := make([]byte, 1024)
	for {
		pending := c.transcript.String()[c.unread:]
		if idx := strings.Index(pending, substr); idx >= 0 {
			c.unread += idx + len(substr)
			return pending[:idx+len(substr)]
		}
		n, err := c.conn.Read(tmp)
		c.transcript.Write(tmp[:n])
		if err != nil && n == 0 {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, pending, err)
		}
	}
}

// Send writes a line of text to the server, appending \r\n.
//
// Precondition: text should not contain trailing newline characters.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(DefaultTimeout))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// ExpectClosed reads until the server closes the connection and returns
// the remaining output.
func (c *TelnetClient) ExpectClosed(timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	rest, err := io.ReadAll(c.conn)
	c.transcript.Write(rest)
	if err != nil {
		c.t.Fatalf("waiting for close: %v", err)
	}
	pending := c.transcript.String()[c.unread:]
	c.unread = c.transcript.Len()
	return pending
}

// Transcript returns everything read so far.
func (c *TelnetClient) Transcript() string {
	return c.transcript.String()
}

// Close closes the underlying connection.
func (c *TelnetClient) Close() {
	_ = c.conn.Close()
}

// WaitFor polls cond until it holds or the timeout elapses.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
