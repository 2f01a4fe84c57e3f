package server

import (
	"net/http"

	"connectrpc.com/connect"
)

// NewMux registers the RPC route, the progress websocket, and health probing.
func NewMux(svc *Service, hub *Hub) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(GenerateProcedure, connect.NewUnaryHandler(
		GenerateProcedure,
		svc.GenerateWebsite,
		connect.WithCodec(jsonCodec{}),
	))

	mux.HandleFunc("/ws/progress", hub.HandleProgressWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return CORS(mux)
}
