package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"agenda-system/appointment"

	"github.com/gorilla/mux"
)

type listAppointmentsResponse struct {
	Appointments []appointment.Appointment `json:"appointments"`
	Loading      bool                      `json:"loading"`
}

func (a *API) listAppointments(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.Filter(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, a.listResponse(items))
}

func (a *API) listResponse(items []appointment.Appointment) listAppointmentsResponse {
	res := listAppointmentsResponse{Appointments: items}
	if l, ok := a.store.(interface{ Loading() bool }); ok {
		res.Loading = l.Loading()
	}
	return res
}

func (a *API) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointment.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := a.store.Create(r.Context(), req)
	if err != nil {
		if appointment.IsValidation(err) {
			a.Response(w, http.StatusBadRequest, err.Error())
			return
		}
		a.logger.ErrorContext(r.Context(), "create appointment", "err", err)
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, created)
}

func (a *API) reloadAppointments(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Load(r.Context(), a.seed); err != nil {
		a.logger.ErrorContext(r.Context(), "reload appointments", "err", err)
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	items, err := a.store.List(r.Context())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, a.listResponse(items))
}

func (a *API) getAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := a.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.Response(w, http.StatusOK, appt)
}

func (a *API) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		a.storeError(w, err)
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}

func (a *API) toggleAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := a.store.ToggleStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.Response(w, http.StatusOK, appt)
}

func (a *API) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := a.store.Cancel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.Response(w, http.StatusOK, appt)
}

func (a *API) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, appointment.ErrNotFound) {
		a.Response(w, http.StatusNotFound, "appointment not found")
		return
	}
	a.logger.Error("store", "err", err)
	a.Response(w, http.StatusInternalServerError, err.Error())
}
