package vets

// Veterinarian representa al personal que atiende citas.
type Veterinarian struct {
	ID             string
	Name           string
	Specialization string // cirugía, dermatología, práctica general...
	Email          string // único a nivel global
	Phone          string
}
