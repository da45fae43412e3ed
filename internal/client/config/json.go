package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/flagx"
	"github.com/dmitrijs2005/homeboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	AuthEndpoint     string         `json:"auth_endpoint"`
	FilesEndpoint    string         `json:"files_endpoint"`
	ProfileEndpoint  string         `json:"profile_endpoint"`
	UserDataEndpoint string         `json:"user_data_endpoint"`
	ContactEndpoint  string         `json:"contact_endpoint"`
	DataDir          string         `json:"data_dir"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent file path means no overlay; empty fields in
// the file leave the current value alone. Read or unmarshal errors panic
// (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpoint != "" {
		cfg.AuthEndpoint = jc.AuthEndpoint
	}
	if jc.FilesEndpoint != "" {
		cfg.FilesEndpoint = jc.FilesEndpoint
	}
	if jc.ProfileEndpoint != "" {
		cfg.ProfileEndpoint = jc.ProfileEndpoint
	}
	if jc.UserDataEndpoint != "" {
		cfg.UserDataEndpoint = jc.UserDataEndpoint
	}
	if jc.ContactEndpoint != "" {
		cfg.ContactEndpoint = jc.ContactEndpoint
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
