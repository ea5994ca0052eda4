package checks

import "catalog-sync/core/registry"

// StoreReport describes whether one store can be used.
type StoreReport struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Configured bool     `json:"configured"`
	Missing    []string `json:"missing"`
	Storefront string   `json:"storefront,omitempty"`
}

// CheckStores reports the credential state of every profile. It never
// contacts the stores.
func CheckStores(profiles []registry.Profile) []StoreReport {
	reports := make([]StoreReport, 0, len(profiles))
	for _, p := range profiles {
		missing := p.Missing()
		report := StoreReport{
			Key:        p.Key,
			Name:       p.Name(),
			Configured: len(missing) == 0,
			Missing:    missing,
		}
		if report.Missing == nil {
			report.Missing = []string{}
		}
		if p.StoreHash != "" {
			report.Storefront = p.Storefront()
		}
		reports = append(reports, report)
	}
	return reports
}
