package backend

import (
	"fmt"

	"eclor/internal/config"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type: backendType,

		GoogleSpreadsheetID:     appConfig.GoogleSpreadsheetID,
		GoogleServiceAccount:    appConfig.GoogleServiceAccount,
		GoogleServiceAccountKey: appConfig.GoogleServiceAccountKey,
		GoogleSheetsReadOnly:    appConfig.GoogleSheetsReadOnly,

		CacheTTL: appConfig.SheetsCacheTTL,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SheetsBackend:
		if c.GoogleSpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for sheets backend")
		}
		if c.GoogleServiceAccount == "" {
			return fmt.Errorf("service account email is required for sheets backend")
		}
		if c.GoogleServiceAccountKey == "" {
			return fmt.Errorf("service account key is required for sheets backend")
		}

	case MemoryBackend:
		// Memory backend doesn't require additional configuration
	}

	return nil
}

// GetBackendTypes returns all valid backend types
func GetBackendTypes() []BackendType {
	return []BackendType{SheetsBackend, MemoryBackend}
}
