package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Database table names
const (
	TableClients  = "clients"
	TableProducts = "products"
	TableSellers  = "sellers"
	TableProjects = "projects"
	TableTasks    = "tasks"
	TableUsers    = "users"
)

// UnassignedLabel is the display fallback for a dangling or missing
// product/seller reference.
const UnassignedLabel = "N/D"
