package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-clinic-api/internal/ports/auth"
)

type ctxKey int

const claimsKey ctxKey = iota

// AuthContext resuelve la identidad del request y la deja en el contexto.
// Con verifier nil (modo dev) la identidad sale del header X-Debug-User-ID;
// con verifier, de un Bearer token válido. Nunca corta el request: sin claims
// el request sigue anónimo y cada consumidor decide qué hacer con eso.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(verifier, r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveClaims(verifier auth.AuthVerifier, r *http.Request) (auth.Claims, bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID"))
		if uid == "" {
			return auth.Claims{}, false
		}
		return auth.Claims{UserID: uid}, true
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		// Token inválido == anónimo; no es tarea del middleware responder 401.
		return auth.Claims{}, false
	}
	return claims, true
}

// GetClaims expone la identidad resuelta; ok == false significa anónimo.
func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
