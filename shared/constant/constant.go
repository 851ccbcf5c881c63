package constant

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)

const (
	StatusReserved   = "R"
	StatusWaitlisted = "W"
	StatusConfirmed  = "C"
)

const (
	MaxPlaneMakeLength       = 32
	MaxPlaneModelLength      = 64
	MaxPersonNameLength      = 128
	MaxNationalityLength     = 25
	MaxAirportCodeLength     = 5
	MaxCustomerNameLength    = 24
	MaxCustomerAddressLength = 256
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
