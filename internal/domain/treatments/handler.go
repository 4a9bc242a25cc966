package treatments

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-api/internal/domain/appointments"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, apptsSvc *appointments.Service) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Get("/", listTreatmentsHandler(svc))
		tr.Post("/", createTreatmentHandler(svc, apptsSvc))
		tr.Get("/appointment/{appointmentID}", listTreatmentsByAppointmentHandler(svc))
		tr.Get("/{treatmentID}", getTreatmentHandler(svc))
		tr.Put("/{treatmentID}", updateTreatmentHandler(svc, apptsSvc))
		tr.Delete("/{treatmentID}", deleteTreatmentHandler(svc))
	})
}

type treatmentRequest struct {
	AppointmentID string   `json:"appointmentId"`
	Diagnosis     string   `json:"diagnosis"`
	Treatment     string   `json:"treatment"`
	Cost          *float64 `json:"cost"`
	Notes         string   `json:"notes"`
}

type treatmentResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	Diagnosis     string    `json:"diagnosis"`
	Treatment     string    `json:"treatment"`
	Cost          *float64  `json:"cost,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Tags treatments
// @Produce json
// @Success 200 {array} treatmentResponse
// @Router /treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeTreatmentList(w, items)
	}
}

// listTreatmentsByAppointmentHandler godoc
// @Summary Tratamientos de una cita
// @Tags treatments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {array} treatmentResponse
// @Router /treatments/appointment/{appointmentID} [get]
func listTreatmentsByAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAppointment(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeTreatmentList(w, items)
	}
}

// getTreatmentHandler godoc
// @Summary Obtener tratamiento por id
// @Tags treatments
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 404 {object} errorResponse
// @Router /treatments/{treatmentID} [get]
func getTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "treatment not found")
			return
		}
		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

// createTreatmentHandler godoc
// @Summary Registrar tratamiento
// @Description El appointmentId debe referenciar una cita existente; si no resuelve, 400.
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body treatmentRequest true "Datos del tratamiento"
// @Success 201 {object} treatmentResponse
// @Failure 400 {object} errorResponse
// @Router /treatments [post]
func createTreatmentHandler(svc *Service, apptsSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req treatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := apptsSvc.GetByID(r.Context(), req.AppointmentID); err != nil {
			writeError(w, http.StatusBadRequest, "appointment does not exist")
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			AppointmentID: req.AppointmentID,
			Diagnosis:     req.Diagnosis,
			Treatment:     req.Treatment,
			Cost:          req.Cost,
			Notes:         req.Notes,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toTreatmentResponse(t))
	}
}

// updateTreatmentHandler godoc
// @Summary Actualizar tratamiento (reemplazo completo)
// @Tags treatments
// @Accept json
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Param payload body treatmentRequest true "Datos del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /treatments/{treatmentID} [put]
func updateTreatmentHandler(svc *Service, apptsSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req treatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		appointmentID := ""
		if req.AppointmentID != "" {
			if _, err := apptsSvc.GetByID(r.Context(), req.AppointmentID); err == nil {
				appointmentID = req.AppointmentID
			}
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "treatmentID"), CreateInput{
			AppointmentID: appointmentID,
			Diagnosis:     req.Diagnosis,
			Treatment:     req.Treatment,
			Cost:          req.Cost,
			Notes:         req.Notes,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "treatment not found")
			case ErrInvalidInput:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

// deleteTreatmentHandler godoc
// @Summary Eliminar tratamiento
// @Tags treatments
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /treatments/{treatmentID} [delete]
func deleteTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "treatmentID")); err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "treatment not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:            t.ID,
		AppointmentID: t.AppointmentID,
		Diagnosis:     t.Diagnosis,
		Treatment:     t.Treatment,
		Cost:          t.Cost,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

func writeTreatmentList(w http.ResponseWriter, items []Treatment) {
	out := make([]treatmentResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTreatmentResponse(t))
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
