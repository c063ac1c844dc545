package trigger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type recordedPress struct {
	row, col int
}

type fakePresser struct {
	mu      sync.Mutex
	presses []recordedPress
	path    []string
}

func (f *fakePresser) Press(_ context.Context, row, col int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presses = append(f.presses, recordedPress{row, col})
}

func (f *fakePresser) Path() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

func (f *fakePresser) recorded() []recordedPress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedPress(nil), f.presses...)
}

// dialTestServer upgrades a client connection against a httptest server
// wrapping the trigger websocket handler.
func dialTestServer(t *testing.T, s *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(s.handleWS))
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

func readAck(t *testing.T, conn *websocket.Conn) Ack {
	t.Helper()
	var ack Ack
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatalf("reading ack: %v", err)
	}
	return ack
}

func TestPressEventForwarded(t *testing.T) {
	presser := &fakePresser{path: []string{"Main Menu", "Network"}}
	s := New(Config{}, presser, 3, 5)
	conn, cleanup := dialTestServer(t, s)
	defer cleanup()

	if err := conn.WriteJSON(PressEvent{Row: 1, Col: 2}); err != nil {
		t.Fatal(err)
	}

	ack := readAck(t, conn)
	if !ack.OK {
		t.Fatalf("ack not ok: %q", ack.Error)
	}
	if len(ack.Path) != 2 || ack.Path[1] != "Network" {
		t.Errorf("ack path = %v", ack.Path)
	}

	presses := presser.recorded()
	if len(presses) != 1 || presses[0] != (recordedPress{1, 2}) {
		t.Errorf("presses = %v, want [{1 2}]", presses)
	}
}

func TestPressOutsideGridRejected(t *testing.T) {
	presser := &fakePresser{}
	s := New(Config{}, presser, 3, 5)
	conn, cleanup := dialTestServer(t, s)
	defer cleanup()

	if err := conn.WriteJSON(PressEvent{Row: 3, Col: 0}); err != nil {
		t.Fatal(err)
	}

	ack := readAck(t, conn)
	if ack.OK {
		t.Error("out-of-grid press acked ok")
	}
	if !strings.Contains(ack.Error, "outside") {
		t.Errorf("ack error = %q", ack.Error)
	}
	if len(presser.recorded()) != 0 {
		t.Errorf("out-of-grid press reached the navigator: %v", presser.recorded())
	}
}

func TestMalformedEventRejected(t *testing.T) {
	presser := &fakePresser{}
	s := New(Config{}, presser, 3, 5)
	conn, cleanup := dialTestServer(t, s)
	defer cleanup()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}

	ack := readAck(t, conn)
	if ack.OK {
		t.Error("malformed event acked ok")
	}
	if len(presser.recorded()) != 0 {
		t.Errorf("malformed event reached the navigator: %v", presser.recorded())
	}
}

func TestRunServesAndShutsDown(t *testing.T) {
	presser := &fakePresser{}
	s := New(Config{Host: "127.0.0.1", Port: 0}, presser, 3, 5)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Run binds before serving; give it a moment then stop it.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
