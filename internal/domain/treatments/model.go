package treatments

import "time"

// maxNotesLen acota las notas, igual que la columna original (VARCHAR(1000)).
const maxNotesLen = 1000

// Treatment es el registro de diagnóstico/tratamiento de una cita.
type Treatment struct {
	ID            string
	AppointmentID string

	Diagnosis string
	Treatment string
	Cost      *float64 // opcional
	Notes     string   // opcional, máx 1000 caracteres

	CreatedAt time.Time
}
