package model

// CreditProfile classifies a client's creditworthiness tier. The tier
// drives all correlated numeric fields (score, debt ratio, savings).
type CreditProfile string

const (
	ProfileExcellent CreditProfile = "Excelente"
	ProfileGood      CreditProfile = "Bueno"
	ProfileFair      CreditProfile = "Regular"
	ProfilePoor      CreditProfile = "Malo"
)

// Profiles lists all credit profiles in distribution order. The last
// entry absorbs the rounding remainder when splitting N clients into
// proportional buckets.
var Profiles = []CreditProfile{ProfileExcellent, ProfileGood, ProfileFair, ProfilePoor}

// EmploymentType classifies a client's source of income.
type EmploymentType string

const (
	EmploymentSalaried    EmploymentType = "Empleado"
	EmploymentIndependent EmploymentType = "Independiente"
	EmploymentRetired     EmploymentType = "Pensionado"
)

// Client is one synthetic client record. JSON tags match the document
// schema consumed by downstream credit-scoring demos.
type Client struct {
	ID              string         `json:"id"`
	NationalID      string         `json:"cedulaCiudadania"`
	FullName        string         `json:"nombreCompleto"`
	Email           string         `json:"email"`
	Phone           string         `json:"telefono"`
	BirthDate       string         `json:"fechaNacimiento"` // YYYY-MM-DD
	City            string         `json:"ciudadResidencia"`
	MonthlyIncome   int            `json:"ingresoMensual"`
	EmploymentType  EmploymentType `json:"tipoEmpleo"`
	EmploymentYears int            `json:"antiguedadLaboral"`
	CreditProfile   CreditProfile  `json:"historialCrediticio"`
	CurrentDebt     int            `json:"deudaActual"`
	SavingsBalance  int            `json:"saldoCuentaAhorros"`
	CreditScore     int            `json:"scoreCrediticio"`
}
