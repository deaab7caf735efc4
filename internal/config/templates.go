package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes a starter settings file to path. It refuses to
// clobber an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(settingsTemplate), 0o600)
}

const settingsTemplate = `addr = ":9090"
max_payload_size = 4194304
enable_flate = false
metrics_addr = ""
`
