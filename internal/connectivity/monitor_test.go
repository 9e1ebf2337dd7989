package connectivity

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestStatic_Transitions(t *testing.T) {
	m := NewStatic(true)
	if !m.Online() {
		t.Fatal("Expected initial online state")
	}

	var events []bool
	cancel := m.Subscribe(func(online bool) {
		events = append(events, online)
	})

	m.SetOnline(false)
	m.SetOnline(false) // No change, no event
	m.SetOnline(true)

	if m.Online() != true {
		t.Error("Expected online after final transition")
	}
	if len(events) != 2 || events[0] != false || events[1] != true {
		t.Errorf("Expected events [false true], got %v", events)
	}

	cancel()
	m.SetOnline(false)
	if len(events) != 2 {
		t.Error("Cancelled subscription must not receive events")
	}
}

func TestProbe_OnlineWhenProbeResponds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := NewProbe(server.URL, time.Hour, time.Second)
	defer p.Close()

	if !p.Online() {
		t.Error("Expected online when probe endpoint responds")
	}
}

func TestProbe_OfflineWhenUnreachable(t *testing.T) {
	// A closed server guarantees a transport error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := NewProbe(url, time.Hour, time.Second)
	defer p.Close()

	if p.Online() {
		t.Error("Expected offline when probe endpoint is unreachable")
	}
}

func TestProbe_NotifiesOnTransition(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			// Hijack and drop the connection to force a transport error
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("Server does not support hijacking")
			}
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := NewProbe(server.URL, 20*time.Millisecond, time.Second)
	defer p.Close()

	if !p.Online() {
		t.Fatal("Expected initial online state")
	}

	events := make(chan bool, 8)
	cancel := p.Subscribe(func(online bool) { events <- online })
	defer cancel()

	healthy.Store(false)
	select {
	case online := <-events:
		if online {
			t.Error("Expected offline transition first")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for offline transition")
	}

	healthy.Store(true)
	select {
	case online := <-events:
		if !online {
			t.Error("Expected online transition")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for online transition")
	}
}
