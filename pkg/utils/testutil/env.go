package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GetEnvsOrSkip returns the values of all keys in order. The test is skipped, naming every
// missing key, unless all of them are set.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()
	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		t.Skipf("Environment variables %v are not set, skipping test", missing)
	}
	return values
}
