package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the ambient configuration read once at startup. Values come
// from the environment, optionally seeded from a .env file in the
// working directory.
type Config struct {
	// Quality is the lossy-encoder quality used when -quality is not
	// given on the command line. Zero leaves the encoder default.
	Quality int
	// CheckUpdate enables the GitHub release check after a run.
	CheckUpdate bool
}

// LoadConfig reads the environment. A missing .env file is not an
// error; out-of-range values are ignored rather than fatal, since the
// environment is advisory and the command line always wins.
func LoadConfig() Config {
	_ = godotenv.Load()

	var cfg Config
	if v := os.Getenv("GOMAGICK_QUALITY"); v != "" {
		if q, err := strconv.Atoi(v); err == nil && q >= 1 && q <= 100 {
			cfg.Quality = q
		}
	}
	switch os.Getenv("GOMAGICK_CHECK_UPDATE") {
	case "1", "true":
		cfg.CheckUpdate = true
	}
	return cfg
}
