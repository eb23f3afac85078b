package realtime

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func recvMessage(t *testing.T, ch <-chan SSEMessage, timeout time.Duration) SSEMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return SSEMessage{}
}

func TestSSEHubReconnectAndOrdering(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	channel := uuid.New().String()

	clientA := hub.NewSSEClient(uuid.New())
	hub.AddChannel(clientA, channel)

	first := SSEMessage{Channel: channel, Event: SSEEventCatalogChanged, Data: map[string]any{"seq": 1}}
	second := SSEMessage{Channel: channel, Event: SSEEventLearningDataInvalidated, Data: map[string]any{"seq": 2}}
	hub.Broadcast(first)
	hub.Broadcast(second)

	gotFirst := recvMessage(t, clientA.Outbound, time.Second)
	gotSecond := recvMessage(t, clientA.Outbound, time.Second)
	if gotFirst.Event != SSEEventCatalogChanged {
		t.Fatalf("first event: want=%s got=%s", SSEEventCatalogChanged, gotFirst.Event)
	}
	if gotSecond.Event != SSEEventLearningDataInvalidated {
		t.Fatalf("second event: want=%s got=%s", SSEEventLearningDataInvalidated, gotSecond.Event)
	}

	hub.CloseClient(clientA)
	hub.CloseClient(clientA)
	select {
	case _, ok := <-clientA.Outbound:
		if ok {
			t.Fatalf("clientA outbound should be closed after disconnect")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for clientA channel close")
	}
	if n := hub.Subscribers(channel); n != 0 {
		t.Fatalf("subscribers after close: %d", n)
	}

	clientB := hub.NewSSEClient(uuid.New())
	hub.AddChannel(clientB, channel)
	reconnect := SSEMessage{Channel: channel, Event: SSEEventLearningDataInvalidated, Data: map[string]any{"seq": 3}}
	hub.Broadcast(reconnect)
	gotReconnect := recvMessage(t, clientB.Outbound, time.Second)
	if gotReconnect.Event != SSEEventLearningDataInvalidated {
		t.Fatalf("reconnect event: want=%s got=%s", SSEEventLearningDataInvalidated, gotReconnect.Event)
	}
}

func TestSSEHubChannelIsolation(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	alice := hub.NewSSEClient(uuid.New())
	bob := hub.NewSSEClient(uuid.New())
	hub.AddChannel(alice, UserChannel(alice.UserID))
	hub.AddChannel(bob, UserChannel(bob.UserID))
	hub.AddChannel(bob, CatalogChannel)

	hub.Broadcast(SSEMessage{Channel: UserChannel(alice.UserID), Event: SSEEventLearningDataInvalidated})
	hub.Broadcast(SSEMessage{Channel: CatalogChannel, Event: SSEEventCatalogChanged})
	hub.Broadcast(SSEMessage{Event: SSEEventCatalogChanged})

	if got := recvMessage(t, alice.Outbound, time.Second); got.Event != SSEEventLearningDataInvalidated {
		t.Fatalf("alice got %s", got.Event)
	}
	if got := recvMessage(t, bob.Outbound, time.Second); got.Event != SSEEventCatalogChanged {
		t.Fatalf("bob got %s", got.Event)
	}
	select {
	case msg := <-alice.Outbound:
		t.Fatalf("alice received foreign message %+v", msg)
	default:
	}

	hub.RemoveChannel(bob, CatalogChannel)
	if n := hub.Subscribers(CatalogChannel); n != 0 {
		t.Fatalf("catalog subscribers: %d", n)
	}
}

func TestSSEHubDropsWhenBufferFull(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	channel := uuid.New().String()
	client := hub.NewSSEClient(uuid.New())
	hub.AddChannel(client, channel)

	done := make(chan struct{})
	go func() {
		for i := 0; i < outboundBuffer*2; i++ {
			hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCatalogChanged})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("broadcast blocked on a full client")
	}
	if got := len(client.Outbound); got != outboundBuffer {
		t.Fatalf("buffered=%d want %d", got, outboundBuffer)
	}
}

func TestSSEHubServeHTTPStreamsEvents(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	userID := uuid.New()
	client := hub.NewSSEClient(userID)
	hub.AddChannel(client, UserChannel(userID))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeHTTP(w, r, client)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type: %q", ct)
	}

	hub.Broadcast(SSEMessage{Channel: UserChannel(userID), Event: SSEEventLearningDataInvalidated})

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		if strings.HasPrefix(line, "event: ") {
			if got := strings.TrimSpace(strings.TrimPrefix(line, "event: ")); got != string(SSEEventLearningDataInvalidated) {
				t.Fatalf("event line: %q", got)
			}
			break
		}
	}
	hub.CloseClient(client)
}

func TestUserChannel(t *testing.T) {
	if UserChannel(uuid.Nil) != "" {
		t.Fatalf("nil user should have no channel")
	}
	id := uuid.New()
	if UserChannel(id) != id.String() {
		t.Fatalf("unexpected channel for %s", id)
	}
}
