package registry

import (
	"fmt"
	"strings"
)

// defaultNames are the display names of the well-known stores.
var defaultNames = map[string]string{
	"wilson_us": "Wilson Amplifiers US",
	"signal_us": "SignalBoosters US",
	"wilson_ca": "Wilson Amplifiers CA",
	"signal_ca": "SignalBoosters CA",
}

// Profile is the immutable description of one store.
type Profile struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	StoreHash   string `json:"-"`
	AccessToken string `json:"-"`
	ClientID    string `json:"-"`
	// StoreURL is the storefront base URL used to build product links.
	StoreURL string `json:"store_url"`
}

// Name returns the display name, falling back to the key.
func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if name, ok := defaultNames[p.Key]; ok {
		return name
	}
	return p.Key
}

// Storefront returns StoreURL or the default storefront derived from the hash.
func (p Profile) Storefront() string {
	if p.StoreURL != "" {
		return strings.TrimRight(p.StoreURL, "/")
	}
	return fmt.Sprintf("https://%s.mybigcommerce.com", p.StoreHash)
}

// Missing lists the credential settings that are empty.
func (p Profile) Missing() []string {
	var missing []string
	if p.StoreHash == "" {
		missing = append(missing, "hash")
	}
	if p.AccessToken == "" {
		missing = append(missing, "access_token")
	}
	if p.ClientID == "" {
		missing = append(missing, "client_id")
	}
	return missing
}

// ConfigurationError reports a store that cannot be used. Missing is nil when
// the key is not known at all.
type ConfigurationError struct {
	Key     string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("store %q is not configured", e.Key)
	}
	return fmt.Sprintf("store %q is missing %s", e.Key, strings.Join(e.Missing, ", "))
}
