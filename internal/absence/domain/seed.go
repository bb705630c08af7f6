package domain

// bootstrapEmployees is the fixed sample set installed by both backends on
// first use so a fresh deployment has something to show.
var bootstrapEmployees = []Employee{
	{ID: "1", Name: "Alice Dubois", Role: "Développeuse Frontend"},
	{ID: "2", Name: "Bob Martin", Role: "Chef de Projet"},
	{ID: "3", Name: "Charlie Dupont", Role: "Designer UX/UI"},
	{ID: "4", Name: "David Lefebvre", Role: "Ingénieur Backend"},
}

// BootstrapEmployees returns a copy of the bootstrap sample set
func BootstrapEmployees() []Employee {
	out := make([]Employee, len(bootstrapEmployees))
	copy(out, bootstrapEmployees)
	return out
}
