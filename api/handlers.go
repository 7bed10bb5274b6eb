package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"agenda-system/appointment"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type API struct {
	root   *mux.Router
	router *mux.Router
	store  appointment.Store
	seed   []appointment.Appointment
	logger *slog.Logger
}

// NewAPI serves store under /api. seed is what a reload puts back.
func NewAPI(store appointment.Store, seed []appointment.Appointment, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	root := mux.NewRouter()
	return &API{
		root:   root,
		router: root.PathPrefix("/api").Subrouter(),
		store:  store,
		seed:   seed,
		logger: logger,
	}
}

func (a *API) Router() http.Handler {
	return a.root
}

// Handler wraps the router with an access log written to w.
func (a *API) Handler(w io.Writer) http.Handler {
	return handlers.LoggingHandler(w, a.root)
}

type Response struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	err := json.NewEncoder(w).Encode(Response{
		Status:   status,
		Response: data,
	})
	if err != nil {
		a.logger.Error("encode response", "err", err)
	}
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	a.router.HandleFunc("/appointments", a.listAppointments).Methods(http.MethodGet)
	a.router.HandleFunc("/appointments", a.createAppointment).Methods(http.MethodPost)
	a.router.HandleFunc("/appointments/reload", a.reloadAppointments).Methods(http.MethodPost)
	a.router.HandleFunc("/appointments/{id}", a.getAppointment).Methods(http.MethodGet)
	a.router.HandleFunc("/appointments/{id}", a.deleteAppointment).Methods(http.MethodDelete)
	a.router.HandleFunc("/appointments/{id}/toggle", a.toggleAppointment).Methods(http.MethodPost)
	a.router.HandleFunc("/appointments/{id}/cancel", a.cancelAppointment).Methods(http.MethodPost)
}
