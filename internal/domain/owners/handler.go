package owners

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type ownerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ownerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags owners
// @Produce json
// @Success 200 {array} ownerResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño por id
// @Tags owners
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {object} ownerResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "owner not found")
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} errorResponse "email duplicado o datos inválidos"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
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

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño (reemplazo completo)
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} ownerResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "owner not found")
			case ErrInvalidInput, ErrEmailTaken:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Eliminar dueño (cascada: mascotas, citas, tratamientos)
// @Tags owners
// @Param ownerID path string true "ID del dueño"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "owner not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:      o.ID,
		Name:    o.Name,
		Email:   o.Email,
		Phone:   o.Phone,
		Address: o.Address,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON/writeError están duplicados intencionalmente en los handlers de cada
// módulo para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si el patrón crece, recién conviene extraerlos a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
