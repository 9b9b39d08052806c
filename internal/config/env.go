package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// envOwned records the variables set from an env file, so later loads may
// overwrite or remove them while variables from the process stay untouched.
var (
	envMu    sync.Mutex
	envOwned = map[string]bool{}
)

// loadEnvFiles applies KEY=VALUE pairs from the first env file found in dir.
// Variables set by the process win over the file. Variables that came from a
// previous load are refreshed, and unset when the file no longer has them. A
// missing file is not an error.
func loadEnvFiles(dir string) {
	envMu.Lock()
	defer envMu.Unlock()

	values := map[string]string{}
	for _, name := range envFiles {
		f := filepath.Join(dir, name)
		if _, err := os.Stat(f); err != nil {
			continue
		}
		read, err := godotenv.Read(f)
		if err != nil {
			slog.Warn("Failed to load env file", logfields.Path(f), logfields.Error(err))
			continue
		}
		values = read
		slog.Debug("Loaded environment variables", logfields.Path(f), logfields.Count(len(read)))
		break
	}

	for key := range envOwned {
		if _, ok := values[key]; !ok {
			_ = os.Unsetenv(key)
			delete(envOwned, key)
		}
	}
	for key, value := range values {
		if _, set := os.LookupEnv(key); set && !envOwned[key] {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			slog.Warn("Failed to set environment variable", slog.String("key", key), logfields.Error(err))
			continue
		}
		envOwned[key] = true
	}
}
