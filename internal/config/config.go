package config

import "os"

// Config carries everything the process reads from the environment. Handlers
// get a pointer to one instance instead of reaching for os.Getenv themselves.
type Config struct {
	Port               string
	SiteURL            string
	DatabaseURL        string
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	AdminEmail         string
	UploadDir          string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		SiteURL:            getEnv("SITE_URL", "http://localhost:8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", "secret_key_change_me"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		AdminEmail:         getEnv("ADMIN_MAIL", ""),
		UploadDir:          getEnv("UPLOAD_DIR", "./web/static/img"),
	}
}

// IsAdmin reports whether the given session email is the configured
// administrator address. An empty email is never the admin, even when
// ADMIN_MAIL itself is unset.
func (c *Config) IsAdmin(email string) bool {
	return email != "" && email == c.AdminEmail
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
