package testutil

import (
	"os"
	"testing"
)

// SetEnv sets key to val until the test ends. An empty val unsets the key.
func SetEnv(t *testing.T, key, val string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// ClearEnv unsets every key until the test ends, so host settings such as
// CAID_API_URL cannot leak into defaults.
func ClearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		SetEnv(t, k, "")
	}
}
