//go:build linux

package a11y

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"dirscan/internal/logging"
)

// speechdAnnouncer speaks through speech-dispatcher using the SSIP
// protocol over its session unix socket. The connection is opened
// lazily on the first announcement and dropped on any protocol error;
// the next announcement reconnects.
type speechdAnnouncer struct {
	mu   sync.Mutex
	conn net.Conn
	rd   *bufio.Reader
	log  *logging.Logger
}

func newPlatformAnnouncer() Announcer {
	return &speechdAnnouncer{
		log: logging.Default().WithComponent("a11y"),
	}
}

func platformAvailable() bool {
	path := speechdSocketPath()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// speechdSocketPath returns the session speech-dispatcher socket.
func speechdSocketPath() string {
	if addr := os.Getenv("SPEECHD_ADDRESS"); addr != "" {
		if path, ok := strings.CutPrefix(addr, "unix_socket:"); ok {
			return path
		}
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return ""
	}
	return filepath.Join(runtimeDir, "speech-dispatcher", "speechd.sock")
}

func (a *speechdAnnouncer) Announce(text string, p Priority) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureConnected(); err != nil {
		return err
	}

	ssipPriority := "text"
	if p == Assertive {
		ssipPriority = "important"
	}
	if err := a.command(fmt.Sprintf("SET SELF PRIORITY %s", ssipPriority)); err != nil {
		a.drop()
		return err
	}

	if err := a.command("SPEAK"); err != nil {
		a.drop()
		return err
	}
	// SSIP data block: lines of text terminated by a lone dot. A leading
	// dot in the text is escaped by doubling it.
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ".") {
			line = "." + line
		}
		body.WriteString(line)
		body.WriteString("\r\n")
	}
	body.WriteString(".\r\n")
	if _, err := a.conn.Write([]byte(body.String())); err != nil {
		a.drop()
		return fmt.Errorf("a11y: send text: %w", err)
	}
	if err := a.readReply(); err != nil {
		a.drop()
		return err
	}

	a.log.Debug("announced", "priority", p.String(), "chars", len(text))
	return nil
}

func (a *speechdAnnouncer) ensureConnected() error {
	if a.conn != nil {
		return nil
	}

	path := speechdSocketPath()
	if path == "" {
		return fmt.Errorf("a11y: no speech-dispatcher socket")
	}

	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return fmt.Errorf("a11y: connect speech-dispatcher: %w", err)
	}
	a.conn = conn
	a.rd = bufio.NewReader(conn)

	if err := a.command(`SET SELF CLIENT_NAME "user:dirscan:main"`); err != nil {
		a.drop()
		return err
	}
	return nil
}

// command sends one SSIP command line and checks for a 2xx reply.
func (a *speechdAnnouncer) command(cmd string) error {
	a.conn.SetDeadline(time.Now().Add(2 * time.Second))
	if _, err := fmt.Fprintf(a.conn, "%s\r\n", cmd); err != nil {
		return fmt.Errorf("a11y: send command: %w", err)
	}
	return a.readReply()
}

// readReply consumes an SSIP reply. Replies are one or more lines
// "NNN-text" with the final line "NNN text"; 2xx codes are success.
func (a *speechdAnnouncer) readReply() error {
	for {
		line, err := a.rd.ReadString('\n')
		if err != nil {
			return fmt.Errorf("a11y: read reply: %w", err)
		}
		if len(line) < 4 {
			return fmt.Errorf("a11y: malformed reply %q", line)
		}
		if line[3] == '-' {
			continue
		}
		if line[0] != '2' {
			return fmt.Errorf("a11y: speech-dispatcher error: %s", strings.TrimSpace(line))
		}
		return nil
	}
}

func (a *speechdAnnouncer) drop() {
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
		a.rd = nil
	}
}

func (a *speechdAnnouncer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.conn == nil {
		return nil
	}
	// Best effort goodbye.
	fmt.Fprintf(a.conn, "QUIT\r\n")
	err := a.conn.Close()
	a.conn = nil
	a.rd = nil
	return err
}
