package confs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when the environment does not override them. The admin
// credentials mirror the original deployment; operators should rotate the
// password after first login.
const (
	defaultAddr          = "0.0.0.0:8080"
	defaultJWTSecret     = "bms-secret-key"
	defaultAdminEmail    = "admin@bms.com"
	defaultAdminPassword = "admin123"
	defaultGridFloors    = 5
	defaultGridUnits     = 2
)

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

func ServerAddr() string {
	if addr := os.Getenv("BMS_ADDR"); addr != "" {
		return addr
	}
	return defaultAddr
}

func JWTSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return defaultJWTSecret
}

func AdminEmail() string {
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		return email
	}
	return defaultAdminEmail
}

func AdminPassword() string {
	if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
		return pw
	}
	return defaultAdminPassword
}

func GridFloors() int {
	return intEnv("GRID_FLOORS", defaultGridFloors)
}

func GridUnitsPerFloor() int {
	return intEnv("GRID_UNITS_PER_FLOOR", defaultGridUnits)
}

func intEnv(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
		log.Printf("warning: ignoring invalid %s=%q", key, raw)
	}
	return fallback
}
