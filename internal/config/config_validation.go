package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged configuration before it is handed to the rest
// of the application. The build is rejected rather than patched: bad values
// here mean a broken environment override.
func (c *StructuredConfig) validate() error {
	if err := validateBaseURL(c.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if strings.TrimSpace(c.Storage.Dir) == "" {
		return fmt.Errorf("%w: empty state directory", ErrInvalidStorageConfigs)
	}

	return nil
}

func validateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty base url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url must include host and scheme")
	}

	return nil
}
