package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"catalog-sync/core/metrics"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// productIncludes are the sub-resources requested with every product lookup.
const productIncludes = "variants,custom_fields,bulk_pricing_rules,primary_image,images"

// errNoData marks a 2xx response without a data object.
var errNoData = errors.New("response has no data")

// Client is the capability set the reconciliation engine needs from a store.
type Client interface {
	// FindBySKU returns the first product with the SKU, or nil if none matches.
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	// Create adds a product and returns it with its store-assigned ID.
	Create(ctx context.Context, payload Payload) (*Product, error)
	// Update applies the payload keys to an existing product.
	Update(ctx context.Context, id int, payload Payload) (*Product, error)
	// BrandName resolves a brand ID. It returns "" for 0 or on any failure.
	BrandName(ctx context.Context, brandID int) string
}

// Credentials identify one store to the API.
type Credentials struct {
	StoreHash   string
	AccessToken string
	ClientID    string
}

// HTTPClient talks to one store over the v3 catalog API.
type HTTPClient struct {
	name    string
	baseURL string
	creds   Credentials
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a store client. name is only used in errors, logs and metrics.
func NewClient(name string, creds Credentials, cfg Config, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	return &HTTPClient{
		name:    name,
		baseURL: fmt.Sprintf("%s/stores/%s/v3", apiURL, creds.StoreHash),
		creds:   creds,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger.With(zap.String("store", name)),
	}
}

// BaseURL returns the v3 API root of the store.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	q := url.Values{}
	q.Set("sku", sku)
	q.Set("include", productIncludes)

	var out struct {
		Data []Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/catalog/products?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	return &out.Data[0], nil
}

func (c *HTTPClient) Create(ctx context.Context, payload Payload) (*Product, error) {
	return c.write(ctx, http.MethodPost, "/catalog/products", payload)
}

func (c *HTTPClient) Update(ctx context.Context, id int, payload Payload) (*Product, error) {
	return c.write(ctx, http.MethodPut, "/catalog/products/"+strconv.Itoa(id), payload)
}

func (c *HTTPClient) BrandName(ctx context.Context, brandID int) string {
	if brandID == 0 {
		return ""
	}
	var out struct {
		Data *Brand `json:"data"`
	}
	path := "/catalog/brands/" + strconv.Itoa(brandID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.logger.Warn("Failed to resolve brand", zap.Int("brand_id", brandID), zap.Error(err))
		return ""
	}
	if out.Data == nil {
		c.logger.Warn("Brand response has no data", zap.Int("brand_id", brandID))
		return ""
	}
	return out.Data.Name
}

func (c *HTTPClient) write(ctx context.Context, method, path string, payload Payload) (*Product, error) {
	var out struct {
		Data *Product `json:"data"`
	}
	if err := c.do(ctx, method, path, payload, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, &RemoteError{Store: c.name, Method: method, URL: c.baseURL + path, StatusCode: http.StatusOK, Err: errNoData}
	}
	return out.Data, nil
}

// do sends one request and decodes the JSON body of a 2xx response into target.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, target any) error {
	fullURL := c.baseURL + path
	remoteErr := func(status int, respBody string, err error) error {
		return &RemoteError{Store: c.name, Method: method, URL: fullURL, StatusCode: status, Body: respBody, Err: err}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return remoteErr(0, "", fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return remoteErr(0, "", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("X-Auth-Token", c.creds.AccessToken)
	req.Header.Set("X-Auth-Client", c.creds.ClientID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RemoteRequests.WithLabelValues(c.name, method, "error").Observe(time.Since(start).Seconds())
		return remoteErr(0, "", err)
	}
	defer resp.Body.Close()
	metrics.RemoteRequests.WithLabelValues(c.name, method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return remoteErr(resp.StatusCode, "", fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("Store API call",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteErr(resp.StatusCode, string(respBody), nil)
	}

	if err := json.Unmarshal(respBody, target); err != nil {
		return remoteErr(resp.StatusCode, string(respBody), fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
