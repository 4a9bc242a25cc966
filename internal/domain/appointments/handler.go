package appointments

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-api/internal/domain/pets"
	"vet-clinic-api/internal/domain/vets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, vetsSvc *vets.Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc, petsSvc, vetsSvc))
		ar.Get("/today", listTodayAppointmentsHandler(svc))
		ar.Get("/pet/{petID}", listAppointmentsByPetHandler(svc))
		ar.Get("/veterinarian/{vetID}", listAppointmentsByVetHandler(svc))
		ar.Get("/status/{status}", listAppointmentsByStatusHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc, petsSvc, vetsSvc))
		ar.Put("/{appointmentID}/status", changeStatusHandler(svc))
		ar.Put("/{appointmentID}/cancel", cancelAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type appointmentRequest struct {
	PetID               string `json:"petId"`
	VeterinarianID      string `json:"veterinarianId"`
	AppointmentDateTime string `json:"appointmentDateTime"` // ISO-8601
	Reason              string `json:"reason"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type appointmentResponse struct {
	ID                  string    `json:"id"`
	PetID               string    `json:"petId"`
	VeterinarianID      string    `json:"veterinarianId"`
	AppointmentDateTime time.Time `json:"appointmentDateTime"`
	Reason              string    `json:"reason"`
	Status              Status    `json:"status"`
}

// El frontend original manda LocalDateTime sin zona; se acepta RFC3339 y
// también el formato sin offset.
func parseDateTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeAppointmentList(w, items)
	}
}

// listTodayAppointmentsHandler godoc
// @Summary Citas del día en curso
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Router /appointments/today [get]
func listTodayAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Today(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeAppointmentList(w, items)
	}
}

// listAppointmentsByPetHandler godoc
// @Summary Citas de una mascota
// @Tags appointments
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} appointmentResponse
// @Router /appointments/pet/{petID} [get]
func listAppointmentsByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeAppointmentList(w, items)
	}
}

// listAppointmentsByVetHandler godoc
// @Summary Citas de un veterinario
// @Tags appointments
// @Produce json
// @Param vetID path string true "ID del veterinario"
// @Success 200 {array} appointmentResponse
// @Router /appointments/veterinarian/{vetID} [get]
func listAppointmentsByVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByVeterinarian(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeAppointmentList(w, items)
	}
}

// listAppointmentsByStatusHandler godoc
// @Summary Citas por status
// @Description Un status no reconocido devuelve lista vacía, no error.
// @Tags appointments
// @Produce json
// @Param status path string true "SCHEDULED, COMPLETED o CANCELLED (case-insensitive)"
// @Success 200 {array} appointmentResponse
// @Router /appointments/status/{status} [get]
func listAppointmentsByStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatusString(r.Context(), chi.URLParam(r, "status"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeAppointmentList(w, items)
	}
}

// getAppointmentHandler godoc
// @Summary Obtener cita por id
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{appointmentID} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment not found")
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description Rechaza con 400 si la mascota o el veterinario no existen, o si el veterinario ya tiene una cita en ese instante exacto.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body appointmentRequest true "appointmentDateTime en ISO-8601"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, petsSvc *pets.Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Referencias resueltas contra el store. La referencia rota acá es 400,
		// no 404: el recurso del path no es el que falta.
		petOK, _ := petsSvc.Exists(r.Context(), req.PetID)
		vetOK, _ := vetsSvc.Exists(r.Context(), req.VeterinarianID)
		if !petOK || !vetOK {
			writeError(w, http.StatusBadRequest, "pet or veterinarian does not exist")
			return
		}

		at, ok := parseDateTime(req.AppointmentDateTime)
		if !ok {
			writeError(w, http.StatusBadRequest, "appointmentDateTime must be ISO-8601")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			StartsAt:       at,
			Reason:         req.Reason,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrVetUnavailable:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// updateAppointmentHandler godoc
// @Summary Actualizar cita (reemplazo completo, el status no se toca)
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{appointmentID} [put]
func updateAppointmentHandler(svc *Service, petsSvc *pets.Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		petOK, _ := petsSvc.Exists(r.Context(), req.PetID)
		vetOK, _ := vetsSvc.Exists(r.Context(), req.VeterinarianID)
		if !petOK || !vetOK {
			writeError(w, http.StatusBadRequest, "pet or veterinarian does not exist")
			return
		}

		at, ok := parseDateTime(req.AppointmentDateTime)
		if !ok {
			writeError(w, http.StatusBadRequest, "appointmentDateTime must be ISO-8601")
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "appointmentID"), CreateInput{
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			StartsAt:       at,
			Reason:         req.Reason,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "appointment not found")
			case ErrInvalidInput, ErrVetUnavailable:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// changeStatusHandler godoc
// @Summary Cambiar status de la cita
// @Description Acepta los tres valores case-insensitive; cualquier otro rechaza con 400.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body changeStatusRequest true "Nuevo status"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{appointmentID}/status [put]
func changeStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.ChangeStatus(r.Context(), chi.URLParam(r, "appointmentID"), req.Status)
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "appointment not found")
			case ErrInvalidStatus:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// cancelAppointmentHandler godoc
// @Summary Cancelar cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} errorResponse
// @Router /appointments/{appointmentID}/cancel [put]
func cancelAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Cancel(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "appointment not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Eliminar cita (cascada: tratamientos)
// @Tags appointments
// @Param appointmentID path string true "ID de la cita"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "appointment not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:                  a.ID,
		PetID:               a.PetID,
		VeterinarianID:      a.VeterinarianID,
		AppointmentDateTime: a.StartsAt,
		Reason:              a.Reason,
		Status:              a.Status,
	}
}

func writeAppointmentList(w http.ResponseWriter, items []Appointment) {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAppointmentResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
