package pets

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-api/internal/domain/owners"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, ownersSvc *owners.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, ownersSvc))
		pr.Get("/owner/{ownerID}", listPetsByOwnerHandler(svc))
		pr.Get("/species/{species}", listPetsBySpeciesHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, ownersSvc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Color   string  `json:"color"`
	OwnerID string  `json:"ownerId"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Color     string    `json:"color"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writePetList(w, items)
	}
}

// listPetsByOwnerHandler godoc
// @Summary Listar mascotas de un dueño
// @Tags pets
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {array} petResponse
// @Router /pets/owner/{ownerID} [get]
func listPetsByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writePetList(w, items)
	}
}

// listPetsBySpeciesHandler godoc
// @Summary Listar mascotas por especie (match exacto)
// @Tags pets
// @Produce json
// @Param species path string true "Especie"
// @Success 200 {array} petResponse
// @Router /pets/species/{species} [get]
func listPetsBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBySpecies(r.Context(), chi.URLParam(r, "species"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writePetList(w, items)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota por id
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description El ownerId debe referenciar un dueño existente; si no resuelve, 400.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} errorResponse "dueño inexistente o datos inválidos"
// @Router /pets [post]
func createPetHandler(svc *Service, ownersSvc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Referencia al dueño: se resuelve contra el store, nunca se confía el payload.
		ok, err := ownersSvc.Exists(r.Context(), req.OwnerID)
		if err != nil || !ok {
			writeError(w, http.StatusBadRequest, "owner does not exist")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID: req.OwnerID,
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Age:     req.Age,
			Weight:  req.Weight,
			Color:   req.Color,
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

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (reemplazo completo)
// @Description Si el payload trae un ownerId que no resuelve, se conserva el dueño actual.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, ownersSvc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		ownerID := ""
		if req.OwnerID != "" {
			if ok, err := ownersSvc.Exists(r.Context(), req.OwnerID); err == nil && ok {
				ownerID = req.OwnerID
			}
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), CreateInput{
			OwnerID: ownerID,
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Age:     req.Age,
			Weight:  req.Weight,
			Color:   req.Color,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "pet not found")
			case ErrInvalidInput:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota (cascada: citas y tratamientos)
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			switch err {
			case ErrNotFound:
				writeError(w, http.StatusNotFound, "pet not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Age:       p.Age,
		Weight:    p.Weight,
		Color:     p.Color,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func writePetList(w http.ResponseWriter, items []Pet) {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
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
