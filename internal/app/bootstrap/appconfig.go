// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body limits). AppConfig is everything specific to
// Loomfeed: backend connection strings, the avatar storage backend, and
// the cache used for page revalidation.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Redis page cache (optional; revalidation becomes a no-op without it)
	RedisAddr     string // host:port of the Redis server, blank disables the cache
	RedisPassword string // Redis AUTH password, blank for none
	RedisDB       int    // Redis logical database number

	// Avatar storage configuration
	StorageLocalPath string // Local storage path for uploaded avatars
	StorageLocalURL  string // Public URL prefix for serving stored avatars

	// Base URL of the service (used to absolutize avatar URLs)
	BaseURL string // e.g., "https://loomfeed.example.com" or "http://localhost:3000"
}
