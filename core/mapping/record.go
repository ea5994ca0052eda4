package mapping

import (
	"strings"

	"catalog-sync/core/catalog"

	"github.com/shopspring/decimal"
)

// Defaults applied when the remote record leaves a field out.
const (
	DefaultType         = "physical"
	DefaultAvailability = "available"
)

// Record is the store-neutral view of a product.
type Record struct {
	ID           int                   `json:"id"`
	SKU          string                `json:"sku"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	UPC          string                `json:"upc"`
	MPN          string                `json:"mpn"`
	GTIN         string                `json:"gtin"`
	Brand        string                `json:"brand"`
	URL          string                `json:"url"`
	Type         string                `json:"type"`
	Price        decimal.Decimal       `json:"price"`
	Weight       float64               `json:"weight"`
	Width        float64               `json:"width"`
	Height       float64               `json:"height"`
	Depth        float64               `json:"depth"`
	Availability string                `json:"availability"`
	Visible      bool                  `json:"visible"`
	Categories   []int                 `json:"categories"`
	CustomFields []catalog.CustomField `json:"custom_fields"`
	Images       []catalog.Image       `json:"images"`
}

// Extract normalizes a remote product. Missing fields get type-appropriate
// defaults. The URL is always built from storeURL, which callers pass as the
// source store's storefront even for destination-bound records.
func Extract(p *catalog.Product, brand, storeURL string) Record {
	r := Record{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		UPC:          p.UPC,
		MPN:          p.MPN,
		GTIN:         p.GTIN,
		Brand:        brand,
		Type:         p.Type,
		Price:        p.Price,
		Weight:       p.Weight,
		Width:        p.Width,
		Height:       p.Height,
		Depth:        p.Depth,
		Availability: p.Availability,
		Visible:      true,
		Categories:   []int{},
		CustomFields: []catalog.CustomField{},
		Images:       []catalog.Image{},
	}

	if r.Type == "" {
		r.Type = DefaultType
	}
	if r.Availability == "" {
		r.Availability = DefaultAvailability
	}
	if p.IsVisible != nil {
		r.Visible = *p.IsVisible
	}
	if p.Categories != nil {
		r.Categories = append(r.Categories, p.Categories...)
	}
	if p.CustomFields != nil {
		r.CustomFields = append(r.CustomFields, p.CustomFields...)
	}
	if p.Images != nil {
		r.Images = append(r.Images, p.Images...)
	}

	slug := ""
	if p.CustomURL != nil {
		slug = strings.TrimPrefix(p.CustomURL.URL, "/")
	}
	r.URL = strings.TrimRight(storeURL, "/") + "/" + slug

	return r
}

// ImportPayload builds the full create payload for a record. Optional fields
// are only present when non-empty.
func ImportPayload(r Record) catalog.Payload {
	payload := catalog.Payload{
		"name":         r.Name,
		"description":  r.Description,
		"sku":          r.SKU,
		"type":         r.Type,
		"weight":       r.Weight,
		"price":        r.Price.String(),
		"is_visible":   r.Visible,
		"availability": r.Availability,
	}

	for key, value := range map[string]string{
		"upc":        r.UPC,
		"mpn":        r.MPN,
		"gtin":       r.GTIN,
		"brand_name": r.Brand,
	} {
		if value != "" {
			payload[key] = value
		}
	}

	for key, value := range map[string]float64{
		"width":  r.Width,
		"height": r.Height,
		"depth":  r.Depth,
	} {
		if value != 0 {
			payload[key] = value
		}
	}

	if len(r.Categories) > 0 {
		payload["categories"] = r.Categories
	}

	if len(r.CustomFields) > 0 {
		// Field IDs belong to the source store.
		fields := make([]catalog.CustomField, len(r.CustomFields))
		for i, cf := range r.CustomFields {
			fields[i] = catalog.CustomField{Name: cf.Name, Value: cf.Value}
		}
		payload["custom_fields"] = fields
	}

	return payload
}
