package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// AuthUserContextKey holds the provisioned *models.User for the request.
const AuthUserContextKey = contextKey("auth_user")

// ClientIPContextKey holds the resolved client IP used for role derivation.
const ClientIPContextKey = contextKey("client_ip")
