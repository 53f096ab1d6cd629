// Package health serves the bot's operational endpoints. The bot itself
// talks to Telegram over long polling; this tiny HTTP surface exists for
// deployment probes.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	Uptime string `json:"uptime"`
}

func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, HealthResponse{Status: "ok"})
	}
}

func Status(env string, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, StatusResponse{
			Status: "ok",
			Env:    env,
			Uptime: time.Since(started).Round(time.Second).String(),
		})
	}
}
