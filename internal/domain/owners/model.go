package owners

// Owner representa un cliente de la clínica, dueño de una o más mascotas.
type Owner struct {
	ID      string
	Name    string
	Email   string // único a nivel global
	Phone   string
	Address string
}
