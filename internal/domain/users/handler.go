package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Post("/validate", validateHandler(svc))
	})
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type validateRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type userPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// registerHandler godoc
// @Summary Registrar cuenta
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse "username tomado o datos inválidos"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, token, err := svc.Register(r.Context(), RegisterInput{
			Username:  req.Username,
			Password:  req.Password,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrUsernameTaken:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, authResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    toUserPayload(u),
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse "credenciales inválidas"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch err {
			case ErrInvalidCredentials:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, authResponse{
			Message: "Login successful",
			Token:   token,
			User:    toUserPayload(u),
		})
	}
}

// validateHandler godoc
// @Summary Validar token
// @Description Siempre responde 200; un token roto o ajeno da valid=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body validateRequest true "Token y username"
// @Success 200 {object} validateResponse
// @Router /auth/validate [post]
func validateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusOK, validateResponse{Valid: false})
			return
		}

		writeJSON(w, http.StatusOK, validateResponse{
			Valid: svc.ValidateToken(req.Token, req.Username),
		})
	}
}

func toUserPayload(u User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
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
