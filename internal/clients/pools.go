package clients

// Fixed value pools for synthetic identities. The vocabulary is Colombian
// Spanish to match the downstream demo datasets.

var firstNames = []string{
	"Juan", "Carlos", "Andrés", "Diego", "Jorge", "Luis", "Miguel", "David", "Felipe", "Sergio",
	"María", "Luisa", "Catalina", "Andrea", "Laura", "Diana", "Paola", "Verónica", "Mónica", "Carolina",
}

var lastNames = []string{
	"Gómez", "Rodríguez", "García", "Martínez", "López", "Pérez", "Sánchez", "Ramírez", "Cruz", "Torres",
	"Hernández", "Castillo", "Vargas", "Morales", "Rojas",
}

var emailDomains = []string{
	"banco.com.co", "empresa.com.co", "corp.com.co", "finanzas.com.co", "servicios.com.co",
}

// otherCities are the non-major cities drawn uniformly for the residual
// 25% of the city distribution.
var otherCities = []string{
	"Barranquilla", "Cartagena", "Cúcuta", "Bucaramanga", "Pereira", "Manizales", "Ibagué", "Santa Marta",
}
