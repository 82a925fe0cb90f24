package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"myHomeBack/internal/models"
)

// newTestConnPair upgrades a real connection through httptest and returns the
// server side (what the hub holds) and the client side.
func newTestConnPair(t *testing.T) (serverConn, clientConn *websocket.Conn, cleanup func()) {
	t.Helper()

	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatal(err)
	}
	serverConn = <-conns

	cleanup = func() {
		clientConn.Close()
		serverConn.Close()
		srv.Close()
	}
	return serverConn, clientConn, cleanup
}

func TestHubSurvivesFailedDelivery(t *testing.T) {
	hub := NewWebSocketManager()
	go hub.Run()

	serverConn, clientConn, cleanup := newTestConnPair(t)
	defer cleanup()

	hub.register <- Client{ID: 7, Socket: serverConn}

	// Break the connection so the next delivery fails inside Run.
	clientConn.Close()
	serverConn.Close()

	hub.broadcast <- models.Message{ReceiverID: 7, Text: "hello"}

	// The hub must keep serving registrations after the failed write.
	secondConn, _, cleanup2 := newTestConnPair(t)
	defer cleanup2()

	registered := make(chan struct{})
	go func() {
		hub.register <- Client{ID: 8, Socket: secondConn}
		close(registered)
	}()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after a failed delivery")
	}
}

func TestHubDeliversToReceiverOnly(t *testing.T) {
	hub := NewWebSocketManager()
	go hub.Run()

	serverConn, clientConn, cleanup := newTestConnPair(t)
	defer cleanup()

	hub.register <- Client{ID: 3, Socket: serverConn}
	hub.broadcast <- models.Message{SenderID: 1, ReceiverID: 3, Text: "for you"}

	clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got models.Message
	if err := clientConn.ReadJSON(&got); err != nil {
		t.Fatalf("receiver did not get the message: %v", err)
	}
	if got.Text != "for you" || got.ReceiverID != 3 {
		t.Fatalf("unexpected message %+v", got)
	}
}
