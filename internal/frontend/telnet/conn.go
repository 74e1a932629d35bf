package telnet

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"strings"
	"sync"
	"time"
)

// Telnet IAC (Interpret As Command) constants per RFC 854.
const (
	IAC  byte = 255
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250 // sub-negotiation begin
	GA   byte = 249
	NOP  byte = 241
	SE   byte = 240 // sub-negotiation end

	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
	OptLinemode        byte = 34
)

const (
	backspace byte = 8
	del       byte = 127
)

// ErrInterrupted is returned by ReadLine once Interrupt has been called.
var ErrInterrupted = errors.New("telnet: connection interrupted")

// Conn wraps a TCP connection with Telnet protocol handling.
// Input is read a line at a time with IAC sequences removed; output
// writes are serialized and bounded by the configured write timeout.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex

	// deadlineMu orders read deadline updates against Interrupt.
	deadlineMu  sync.Mutex
	interrupted bool

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps a raw TCP connection with Telnet protocol handling.
// A zero timeout disables the corresponding deadline.
//
// Precondition: raw must be a valid, open network connection.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 4096),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Negotiate asks the client to suppress go-ahead.
//
// Postcondition: Negotiation bytes are written to the connection.
func (c *Conn) Negotiate() error {
	return c.write([]byte{IAC, WILL, OptSuppressGoAhead})
}

// ReadLine reads a single line of input, filtering Telnet IAC sequences
// and control characters. Backspace and DEL erase the previous byte so
// character-mode clients produce the line the player saw.
//
// Postcondition: Returns the line without its terminator, or the
// partial line and an error (including io.EOF). Returns ErrInterrupted
// without reading once Interrupt has been called.
func (c *Conn) ReadLine() (string, error) {
	if err := c.armReadDeadline(); err != nil {
		return "", err
	}

	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}

		switch {
		case b == IAC:
			literal, err := c.handleIAC()
			if err != nil {
				return line.String(), err
			}
			if literal {
				line.WriteByte(IAC)
			}
		case b == '\n':
			return line.String(), nil
		case b == '\r':
			if next, err := c.reader.Peek(1); err == nil && (next[0] == '\n' || next[0] == 0) {
				_, _ = c.reader.ReadByte()
			}
			return line.String(), nil
		case b == backspace || b == del:
			if line.Len() > 0 {
				line.Truncate(line.Len() - 1)
			}
		case b < 32 && b != '\t':
		default:
			line.WriteByte(b)
		}
	}
}

// armReadDeadline starts the read timeout for the next line, unless the
// connection has been interrupted.
func (c *Conn) armReadDeadline() error {
	c.deadlineMu.Lock()
	defer c.deadlineMu.Unlock()

	if c.interrupted {
		return ErrInterrupted
	}
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}
	return nil
}

// Interrupt unblocks a pending ReadLine and makes every later ReadLine
// return ErrInterrupted. Writes are unaffected so a farewell can still
// be sent.
func (c *Conn) Interrupt() {
	c.deadlineMu.Lock()
	defer c.deadlineMu.Unlock()

	c.interrupted = true
	_ = c.raw.SetReadDeadline(time.Now())
}

// handleIAC consumes the remainder of an IAC sequence whose leading IAC
// byte has already been read. literal is true for an escaped IAC IAC,
// which stands for a single 0xFF data byte.
func (c *Conn) handleIAC() (literal bool, err error) {
	cmd, err := c.reader.ReadByte()
	if err != nil {
		return false, err
	}

	switch cmd {
	case IAC:
		return true, nil
	case WILL, WONT, DO, DONT:
		_, err := c.reader.ReadByte()
		return false, err
	case SB:
		for {
			b, err := c.reader.ReadByte()
			if err != nil {
				return false, err
			}
			if b != IAC {
				continue
			}
			next, err := c.reader.ReadByte()
			if err != nil {
				return false, err
			}
			if next == SE {
				return false, nil
			}
		}
	}
	return false, nil
}

// WriteLine sends text followed by \r\n.
//
// Precondition: text should not contain trailing newline characters.
// Postcondition: text + \r\n is written to the connection.
func (c *Conn) WriteLine(text string) error {
	return c.write([]byte(text + "\r\n"))
}

// WriteText sends text with every line feed translated to the Telnet
// \r\n line ending.
//
// Postcondition: text is written with NVT line endings.
func (c *Conn) WriteText(text string) error {
	return c.write([]byte(ToNVT(text)))
}

// Write sends raw bytes to the client.
func (c *Conn) Write(data []byte) error {
	return c.write(data)
}

// WritePrompt sends a prompt string without a trailing newline.
func (c *Conn) WritePrompt(prompt string) error {
	return c.write([]byte(prompt))
}

func (c *Conn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	_, err := c.raw.Write(data)
	return err
}

// Close closes the underlying TCP connection.
//
// Postcondition: The connection is closed and no longer usable.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}

// ToNVT converts bare line feeds to \r\n. Existing \r\n pairs are kept.
//
// Postcondition: Every \n in the result is preceded by \r.
func ToNVT(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n")
}
