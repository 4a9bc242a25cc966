package vets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/veterinarians", func(vr chi.Router) {
		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/specialization/{specialization}", listVetsBySpecializationHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))
		vr.Put("/{vetID}", updateVetHandler(svc))
		vr.Delete("/{vetID}", deleteVetHandler(svc))
	})
}

type vetRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type vetResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Tags veterinarians
// @Produce json
// @Success 200 {array} vetResponse
// @Router /veterinarians [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listVetsBySpecializationHandler godoc
// @Summary Listar veterinarios por especialización
// @Tags veterinarians
// @Produce json
// @Param specialization path string true "Especialización (match exacto)"
// @Success 200 {array} vetResponse
// @Router /veterinarians/specialization/{specialization} [get]
func listVetsBySpecializationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBySpecialization(r.Context(), chi.URLParam(r, "specialization"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getVetHandler godoc
// @Summary Obtener veterinario por id
// @Tags veterinarians
// @Produce json
// @Param vetID path string true "ID del veterinario"
// @Success 200 {object} vetResponse
// @Failure 404 {object} errorResponse
// @Router /veterinarians/{vetID} [get]
func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "veterinarian not found")
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

// createVetHandler godoc
// @Summary Registrar veterinario
// @Tags veterinarians
// @Accept json
// @Produce json
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 201 {object} vetResponse
// @Failure 400 {object} errorResponse "email duplicado o datos inválidos"
// @Router /veterinarians [post]
func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Name:           req.Name,
			Specialization: req.Specialization,
			Email:          req.Email,
			Phone:          req.Phone,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrEmailTaken:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toVetResponse(v))
	}
}

// updateVetHandler godoc
// @Summary Actualizar veterinario (reemplazo completo)
// @Tags veterinarians
// @Accept json
// @Produce json
// @Param vetID path string true "ID del veterinario"
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 200 {object} vetResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /veterinarians/{vetID} [put]
func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "vetID"), CreateInput{
			Name:           req.Name,
			Specialization: req.Specialization,
			Email:          req.Email,
			Phone:          req.Phone,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "veterinarian not found")
			case ErrInvalidInput, ErrEmailTaken:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

// deleteVetHandler godoc
// @Summary Eliminar veterinario (cascada: citas y tratamientos)
// @Tags veterinarians
// @Param vetID path string true "ID del veterinario"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /veterinarians/{vetID} [delete]
func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "veterinarian not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func toVetResponse(v Veterinarian) vetResponse {
	return vetResponse{
		ID:             v.ID,
		Name:           v.Name,
		Specialization: v.Specialization,
		Email:          v.Email,
		Phone:          v.Phone,
	}
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
