package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const (
	envFileFlag    = "env-file"
	defaultEnvFile = ".env"
)

// envFilePath finds the env file before flags are parsed, because flag values are resolved
// from environment variables at parse time.
func envFilePath(argv []string) (string, bool) {
	for i, arg := range argv {
		for _, prefix := range []string{"--" + envFileFlag, "-" + envFileFlag} {
			if arg == prefix && i+1 < len(argv) {
				return argv[i+1], true
			}
			if v, ok := strings.CutPrefix(arg, prefix+"="); ok {
				return v, true
			}
		}
	}
	if v := os.Getenv("RELSUM_ENV_FILE"); v != "" {
		return v, true
	}
	return defaultEnvFile, false
}

// loadEnvFile loads variables from the env file without overriding the existing environment.
// A missing default file is ignored; an explicitly given one must exist.
func loadEnvFile(argv []string) error {
	path, explicit := envFilePath(argv)
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
