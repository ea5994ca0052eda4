package catalog

import "github.com/shopspring/decimal"

// Product is a catalog product as returned by the store API.
// IsVisible is a pointer so that an absent flag can default to visible.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Weight       float64         `json:"weight"`
	Width        float64         `json:"width"`
	Height       float64         `json:"height"`
	Depth        float64         `json:"depth"`
	Price        decimal.Decimal `json:"price"`
	Categories   []int           `json:"categories"`
	BrandID      int             `json:"brand_id"`
	Availability string          `json:"availability"`
	IsVisible    *bool           `json:"is_visible"`
	UPC          string          `json:"upc"`
	MPN          string          `json:"mpn"`
	GTIN         string          `json:"gtin"`
	CustomURL    *CustomURL      `json:"custom_url"`
	CustomFields []CustomField   `json:"custom_fields"`
	Images       []Image         `json:"images"`
	Variants     []Variant       `json:"variants"`
}

// CustomURL is the storefront path of a product.
type CustomURL struct {
	URL          string `json:"url"`
	IsCustomized bool   `json:"is_customized"`
}

// CustomField is a free-form name/value pair. Names are not unique.
type CustomField struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Image describes a product image.
type Image struct {
	ID           int    `json:"id,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	URLStandard  string `json:"url_standard,omitempty"`
	URLThumbnail string `json:"url_thumbnail,omitempty"`
	URLZoom      string `json:"url_zoom,omitempty"`
	IsThumbnail  bool   `json:"is_thumbnail"`
	SortOrder    int    `json:"sort_order"`
	Description  string `json:"description,omitempty"`
}

// Variant is a purchasable option combination of a product.
type Variant struct {
	ID    int              `json:"id"`
	SKU   string           `json:"sku"`
	Price *decimal.Decimal `json:"price"`
}

// Brand is a catalog brand.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Payload is an outgoing create or update body. Only present keys are sent.
type Payload map[string]any
