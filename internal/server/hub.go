package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

const (
	progressWSWriteWait = 10 * time.Second
	progressWSPongWait  = 60 * time.Second
	progressWSPingEvery = (progressWSPongWait * 9) / 10
)

var progressWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type progressEvent struct {
	Type       string `json:"type"`
	Page       string `json:"page,omitempty"`
	Components int    `json:"components,omitempty"`
	Pages      int    `json:"pages,omitempty"`
	Failed     int    `json:"failed,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Hub fans generation progress out to connected websocket clients. It
// satisfies the engine's progress sink.
type Hub struct {
	logger *log.Logger

	mu    sync.Mutex
	conns map[chan progressEvent]struct{}
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		logger: logger,
		conns:  make(map[chan progressEvent]struct{}),
	}
}

func (h *Hub) PageStarted(name string) {
	h.broadcast(progressEvent{Type: "page_started", Page: name})
}

func (h *Hub) PageCompleted(pg site.GeneratedPage) {
	h.broadcast(progressEvent{Type: "page_completed", Page: pg.Name, Components: len(pg.Components)})
}

func (h *Hub) PageFailed(name string, err error) {
	evt := progressEvent{Type: "page_failed", Page: name}
	if err != nil {
		evt.Error = err.Error()
	}
	h.broadcast(evt)
}

func (h *Hub) BundleComposed(bundle *site.WebsiteBundle) {
	h.broadcast(progressEvent{
		Type:   "bundle_composed",
		Pages:  len(bundle.Pages),
		Failed: len(bundle.FailedPages),
	})
}

func (h *Hub) broadcast(evt progressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.conns {
		select {
		case ch <- evt:
		default:
			// Slow client; drop the event rather than stall generation.
		}
	}
}

func (h *Hub) register() chan progressEvent {
	ch := make(chan progressEvent, 32)
	h.mu.Lock()
	h.conns[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unregister(ch chan progressEvent) {
	h.mu.Lock()
	delete(h.conns, ch)
	h.mu.Unlock()
}

// HandleProgressWS upgrades the request and streams progress events until the
// client disconnects.
func (h *Hub) HandleProgressWS(w http.ResponseWriter, r *http.Request) {
	conn, err := progressWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(progressWSPongWait)); err != nil {
		h.logger.Printf("progress ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(progressWSPongWait))
	})

	ch := h.register()
	defer h.unregister(ch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(progressWSPingEvery)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case evt := <-ch:
			_ = conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait))
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
