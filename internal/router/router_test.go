package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-api/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ClinicFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta de dueño, veterinario y mascota
	ownerID := createEntity(t, ts.URL, "/api/owners", map[string]any{
		"name":    "Laura Pérez",
		"email":   "laura@example.com",
		"phone":   "555-0101",
		"address": "Av. Siempre Viva 742",
	})
	vetID := createEntity(t, ts.URL, "/api/veterinarians", map[string]any{
		"name":           "Dr. Gómez",
		"specialization": "surgery",
		"email":          "gomez@clinic.example.com",
		"phone":          "555-0202",
	})
	petID := createEntity(t, ts.URL, "/api/pets", map[string]any{
		"name":    "Milo",
		"species": "dog",
		"breed":   "mixed",
		"age":     4,
		"weight":  12.5,
		"color":   "brown",
		"ownerId": ownerID,
	})

	// 2) Cita y tratamiento colgando de la cita
	apptID := createEntity(t, ts.URL, "/api/appointments", map[string]any{
		"petId":               petID,
		"veterinarianId":      vetID,
		"appointmentDateTime": "2026-10-01T10:00:00",
		"reason":              "annual checkup",
	})
	treatmentID := createEntity(t, ts.URL, "/api/treatments", map[string]any{
		"appointmentId": apptID,
		"diagnosis":     "healthy",
		"treatment":     "none",
		"notes":         "all good",
	})

	// 3) Todo recuperable por GET
	for _, path := range []string{
		"/api/owners/" + ownerID,
		"/api/veterinarians/" + vetID,
		"/api/pets/" + petID,
		"/api/appointments/" + apptID,
		"/api/treatments/" + treatmentID,
	} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 GET %s, got %d body=%s", path, st, string(body))
		}
	}

	// 4) Listados por relación
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets/owner/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pets by owner, got %d body=%s", st, string(body))
		}
		var got []map[string]any
		_ = json.Unmarshal(body, &got)
		if len(got) != 1 {
			t.Fatalf("expected 1 pet for owner, got %d", len(got))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/treatments/appointment/"+apptID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 treatments by appointment, got %d body=%s", st, string(body))
		}
	}

	// 5) Borrar al dueño arrastra mascota, cita y tratamiento
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete owner, got %d body=%s", st, string(body))
		}
	}
	for _, path := range []string{
		"/api/owners/" + ownerID,
		"/api/pets/" + petID,
		"/api/appointments/" + apptID,
		"/api/treatments/" + treatmentID,
	} {
		st, _ := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 GET %s after cascade, got %d", path, st)
		}
	}

	// El veterinario sobrevive al borrado del dueño
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/veterinarians/"+vetID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected veterinarian to survive owner delete, got %d", st)
		}
	}
}

func TestHTTP_Owners_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	createEntity(t, ts.URL, "/api/owners", map[string]any{
		"name":  "Ana",
		"email": "ana@example.com",
	})

	st, body := doReq(t, ts.URL, "POST", "/api/owners", map[string]any{
		"name":  "Otra Ana",
		"email": "ana@example.com",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 duplicate email, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Pets_UnknownOwnerRejected(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/pets", map[string]any{
		"name":    "Ghost",
		"species": "cat",
		"ownerId": "no-such-owner",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown owner, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Appointments_ConflictAndStatus(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createEntity(t, ts.URL, "/api/owners", map[string]any{
		"name":  "Carlos",
		"email": "carlos@example.com",
	})
	petID := createEntity(t, ts.URL, "/api/pets", map[string]any{
		"name":    "Luna",
		"species": "cat",
		"ownerId": ownerID,
	})
	vetID := createEntity(t, ts.URL, "/api/veterinarians", map[string]any{
		"name":  "Dra. Ruiz",
		"email": "ruiz@clinic.example.com",
	})

	apptID := createEntity(t, ts.URL, "/api/appointments", map[string]any{
		"petId":               petID,
		"veterinarianId":      vetID,
		"appointmentDateTime": "2026-10-02T09:00:00",
		"reason":              "vaccination",
	})

	// Mismo veterinario, mismo instante exacto => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/appointments", map[string]any{
			"petId":               petID,
			"veterinarianId":      vetID,
			"appointmentDateTime": "2026-10-02T09:00:00",
			"reason":              "double booked",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 slot conflict, got %d body=%s", st, string(body))
		}
	}

	// Un minuto después pasa sin problema
	createEntity(t, ts.URL, "/api/appointments", map[string]any{
		"petId":               petID,
		"veterinarianId":      vetID,
		"appointmentDateTime": "2026-10-02T09:01:00",
		"reason":              "follow-up",
	})

	// Cambio de estado case-insensitive
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/appointments/"+apptID+"/status", map[string]any{
			"status": "completed",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status change, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "COMPLETED" {
			t.Fatalf("expected status COMPLETED, got %q", resp.Status)
		}
	}

	// Estado desconocido => 400; cita inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/appointments/"+apptID+"/status", map[string]any{
			"status": "bogus",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown status, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/appointments/no-such-id/status", map[string]any{
			"status": "CANCELLED",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown appointment, got %d", st)
		}
	}

	// Atajo de cancelación
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/appointments/"+apptID+"/cancel", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cancel, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "CANCELLED" {
			t.Fatalf("expected status CANCELLED, got %q", resp.Status)
		}
	}

	// Filtro por estado desconocido devuelve lista vacía, no error
	{
		st, body := doReq(t, ts.URL, "GET", "/api/appointments/status/bogus", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 status filter, got %d body=%s", st, string(body))
		}
		var got []map[string]any
		_ = json.Unmarshal(body, &got)
		if len(got) != 0 {
			t.Fatalf("expected empty list for bogus status, got %d items", len(got))
		}
	}
}

func TestHTTP_SpeciesAndSpecializationFiltersAreExact(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createEntity(t, ts.URL, "/api/owners", map[string]any{
		"name":  "Sofía",
		"email": "sofia@example.com",
	})
	createEntity(t, ts.URL, "/api/pets", map[string]any{
		"name":    "Milo",
		"species": "dog",
		"ownerId": ownerID,
	})
	createEntity(t, ts.URL, "/api/veterinarians", map[string]any{
		"name":           "Dr. Gómez",
		"specialization": "surgery",
		"email":          "gomez@clinic.example.com",
	})

	cases := []struct {
		path string
		want int
	}{
		{"/api/pets/species/dog", 1},
		{"/api/pets/species/Dog", 0},
		{"/api/veterinarians/specialization/surgery", 1},
		{"/api/veterinarians/specialization/Surgery", 0},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, "GET", c.path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 GET %s, got %d body=%s", c.path, st, string(body))
		}
		var got []map[string]any
		_ = json.Unmarshal(body, &got)
		if len(got) != c.want {
			t.Fatalf("GET %s: expected %d results, got %d", c.path, c.want, len(got))
		}
	}
}

func TestHTTP_DeleteMissingEntities(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/owners/nope",
		"/api/pets/nope",
		"/api/veterinarians/nope",
		"/api/appointments/nope",
		"/api/treatments/nope",
	} {
		st, _ := doReq(t, ts.URL, "DELETE", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 DELETE %s, got %d", path, st)
		}
	}
}

func TestHTTP_Auth_RegisterLoginValidate(t *testing.T) {
	ts := newTestServer(t)

	// Registro devuelve token y datos públicos del usuario
	var token string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/auth/register", map[string]any{
			"username":  "jperez",
			"password":  "s3cret-pass",
			"email":     "jperez@example.com",
			"firstName": "Juan",
			"lastName":  "Pérez",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" {
			t.Fatalf("register: missing token body=%s", string(body))
		}
		if resp.User.Role != "USER" {
			t.Fatalf("expected default role USER, got %q", resp.User.Role)
		}
		token = resp.Token
	}

	// Username repetido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/auth/register", map[string]any{
			"username": "jperez",
			"password": "otra-clave",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate username, got %d", st)
		}
	}

	// Login correcto e incorrecto
	{
		st, body := doReq(t, ts.URL, "POST", "/api/auth/login", map[string]any{
			"username": "jperez",
			"password": "s3cret-pass",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/auth/login", map[string]any{
			"username": "jperez",
			"password": "wrong",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad credentials, got %d", st)
		}
	}

	// Validate siempre responde 200 con el veredicto
	{
		st, body := doReq(t, ts.URL, "POST", "/api/auth/validate", map[string]any{
			"token":    token,
			"username": "jperez",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 validate, got %d body=%s", st, string(body))
		}
		var resp struct {
			Valid bool `json:"valid"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Valid {
			t.Fatalf("expected valid token, body=%s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/api/auth/validate", map[string]any{
			"token":    "garbage",
			"username": "jperez",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 validate garbage, got %d body=%s", st, string(body))
		}
		var resp struct {
			Valid bool `json:"valid"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Valid {
			t.Fatalf("expected invalid token, body=%s", string(body))
		}
	}
}

func createEntity(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
