package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/seblit/tintlayout/stream"
)

type Api struct {
	streamer *stream.Streamer
}

func NewApi(streamer *stream.Streamer) *Api {
	a := new(Api)
	a.streamer = streamer
	return a
}

// Serve exposes the animation status as JSON on /status.
func (a *Api) Serve() {
	http.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a.streamer.Status())
	})

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
