package api

import (
	"context"
	"net/http"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	if p, ok := a.store.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			a.logger.WarnContext(r.Context(), "health check failed", "err", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
