package products_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"catalog-sync/core/catalog"
	"catalog-sync/core/catalog/mocks"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/registry"
	"catalog-sync/feature/products"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *mocks.Client) {
	t.Helper()
	src, dst := new(mocks.Client), new(mocks.Client)
	clients := map[string]catalog.Client{"wilson_us": src, "signal_ca": dst}

	reg := registry.New([]registry.Profile{
		{Key: "wilson_us", StoreHash: "a", AccessToken: "t", ClientID: "c"},
		{Key: "signal_ca", StoreHash: "b", AccessToken: "t", ClientID: "c"},
	}, func(p registry.Profile) catalog.Client { return clients[p.Key] })

	app := fiber.New()
	feature := products.NewFeature(reconcile.NewEngine(reg, nil, zap.NewNop()), zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, src, dst
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStores(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := do(t, app, httptest.NewRequest("GET", "/stores", nil))
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "SignalBoosters CA", body["stores"].(map[string]any)["signal_ca"])
}

func TestHandleImport(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, src, dst := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{SKU: "X1", Price: decimal.RequireFromString("19.99")}, nil)
		src.On("BrandName", mock.Anything, 0).Return("")
		dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)
		dst.On("Create", mock.Anything, mock.MatchedBy(func(p catalog.Payload) bool {
			_, hasUPC := p["upc"]
			return p["price"] == "19.99" && !hasUPC
		})).Return(&catalog.Product{ID: 10}, nil)

		status, body := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"wilson_us"}, "target_store": {"signal_ca"},
		})

		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "created", body["action"])
		assert.Equal(t, "Successfully imported SKU: X1 from Wilson Amplifiers US to SignalBoosters CA", body["message"])
	})

	t.Run("Skipped", func(t *testing.T) {
		app, src, dst := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{SKU: "X1"}, nil)
		dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 3}, nil)

		status, body := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"wilson_us"}, "target_store": {"signal_ca"},
		})

		assert.Equal(t, 200, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "skipped", body["action"])
		dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UpdateIfExists", func(t *testing.T) {
		app, src, dst := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{SKU: "X1"}, nil)
		src.On("BrandName", mock.Anything, 0).Return("")
		dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 3}, nil)
		dst.On("Update", mock.Anything, 3, mock.Anything).Return(&catalog.Product{ID: 3}, nil)

		status, body := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"wilson_us"}, "target_store": {"signal_ca"}, "update_if_exists": {"on"},
		})

		assert.Equal(t, 200, status)
		assert.Equal(t, "updated", body["action"])
		assert.Contains(t, body["message"], "Successfully updated")
	})

	t.Run("NotFound", func(t *testing.T) {
		app, src, _ := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

		status, body := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"wilson_us"}, "target_store": {"signal_ca"},
		})

		assert.Equal(t, 404, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("MissingInput", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		status, body := postForm(t, app, "/import", url.Values{"source_store": {"wilson_us"}})
		assert.Equal(t, 400, status)
		assert.Equal(t, "No SKU provided.", body["error"])

		status, body = postForm(t, app, "/import", url.Values{"sku": {"X1"}, "source_store": {"wilson_us"}})
		assert.Equal(t, 400, status)
		assert.Equal(t, "Both source and target stores must be selected.", body["error"])
	})

	t.Run("UnknownStore", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		status, _ := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"nowhere"}, "target_store": {"signal_ca"},
		})
		assert.Equal(t, 400, status)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		app, src, _ := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "X1").Return(nil, &catalog.RemoteError{Store: "wilson_us", StatusCode: 401})

		status, _ := postForm(t, app, "/import", url.Values{
			"sku": {"X1"}, "source_store": {"wilson_us"}, "target_store": {"signal_ca"},
		})
		assert.Equal(t, 502, status)
	})
}

func TestHandleBatchImport(t *testing.T) {
	t.Run("SKUList", func(t *testing.T) {
		app, src, dst := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "A").Return(&catalog.Product{SKU: "A"}, nil)
		src.On("FindBySKU", mock.Anything, "B").Return(nil, nil)
		src.On("BrandName", mock.Anything, 0).Return("")
		dst.On("FindBySKU", mock.Anything, "A").Return(nil, nil)
		dst.On("Create", mock.Anything, mock.Anything).Return(&catalog.Product{ID: 1}, nil)

		status, body := postForm(t, app, "/batch_import", url.Values{
			"source_store": {"wilson_us"}, "target_store": {"signal_ca"}, "sku_list": {"A\n\nB\n"},
		})

		assert.Equal(t, 200, status)
		results := body["results"].([]any)
		require.Len(t, results, 2)
		assert.Equal(t, true, results[0].(map[string]any)["success"])
		assert.Equal(t, false, results[1].(map[string]any)["success"])
		assert.Equal(t, float64(1), body["summary"].(map[string]any)["failed"])
	})

	t.Run("File", func(t *testing.T) {
		app, src, dst := setupTestApp(t)
		src.On("FindBySKU", mock.Anything, "A").Return(&catalog.Product{SKU: "A"}, nil)
		dst.On("FindBySKU", mock.Anything, "A").Return(&catalog.Product{ID: 2}, nil)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		w.WriteField("source_store", "wilson_us")
		w.WriteField("target_store", "signal_ca")
		fw, err := w.CreateFormFile("sku_file", "skus.txt")
		require.NoError(t, err)
		fw.Write([]byte("# header\nA\n"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest("POST", "/batch_import", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		status, body := do(t, app, req)

		assert.Equal(t, 200, status)
		results := body["results"].([]any)
		require.Len(t, results, 1)
		assert.Equal(t, "skipped", results[0].(map[string]any)["action"])
	})

	t.Run("NoSKUs", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		status, body := postForm(t, app, "/batch_import", url.Values{
			"source_store": {"wilson_us"}, "target_store": {"signal_ca"},
		})
		assert.Equal(t, 400, status)
		assert.Equal(t, "No SKUs provided.", body["error"])
	})
}

func TestHandleCompare(t *testing.T) {
	app, src, dst := setupTestApp(t)
	src.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{SKU: "X1", Name: "A"}, nil)
	src.On("BrandName", mock.Anything, 0).Return("")
	dst.On("FindBySKU", mock.Anything, "X1").Return(nil, nil)

	status, body := postForm(t, app, "/compare", url.Values{"sku_a": {"X1"}})

	assert.Equal(t, 200, status)
	assert.Equal(t, "A", body["product_a"].(map[string]any)["name"])
	assert.Nil(t, body["product_b"])
	assert.Equal(t, "Wilson Amplifiers US", body["store_a_name"])
	assert.Equal(t, "SignalBoosters CA", body["store_b_name"])

	status, body = postForm(t, app, "/compare", url.Values{})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Store A SKU is required.", body["error"])
}

func TestHandleGetProduct(t *testing.T) {
	app, src, _ := setupTestApp(t)
	src.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{SKU: "X1", BrandID: 4}, nil)
	src.On("BrandName", mock.Anything, 4).Return("weBoost")
	src.On("FindBySKU", mock.Anything, "NONE").Return(nil, nil)

	status, body := postForm(t, app, "/get_product", url.Values{"store": {"wilson_us"}, "sku": {"X1"}})
	assert.Equal(t, 200, status)
	assert.Equal(t, "weBoost", body["product"].(map[string]any)["brand"])

	status, body = postForm(t, app, "/get_product", url.Values{"store": {"wilson_us"}, "sku": {"NONE"}})
	assert.Equal(t, 404, status)
	assert.Equal(t, "Product not found.", body["error"])

	status, _ = postForm(t, app, "/get_product", url.Values{"store": {"wilson_us"}})
	assert.Equal(t, 400, status)
}

func TestHandleUpdateTarget(t *testing.T) {
	t.Run("SelectedFieldsOnly", func(t *testing.T) {
		app, _, dst := setupTestApp(t)
		dst.On("FindBySKU", mock.Anything, "X1-CA").Return(&catalog.Product{ID: 9}, nil)
		dst.On("Update", mock.Anything, 9, catalog.Payload{
			"price":  "24.99",
			"images": []any{map[string]any{"image_url": "https://cdn/1.jpg"}},
		}).Return(&catalog.Product{ID: 9}, nil)

		status, body := postForm(t, app, "/update_target", url.Values{
			"store_a": {"wilson_us"}, "store_b": {"signal_ca"},
			"sku_a": {"X1"}, "sku_b": {"X1-CA"},
			"sync_price": {"on"}, "price": {"24.99"},
			"sync_images": {"on"}, "images": {`[{"image_url":"https://cdn/1.jpg"}]`},
			"name": {"not selected"},
		})

		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		dst.AssertExpectations(t)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		status, body := postForm(t, app, "/update_target", url.Values{
			"store_a": {"wilson_us"}, "store_b": {"signal_ca"},
			"sku_a": {"X1"}, "sku_b": {"X1"},
			"sync_weight": {"on"}, "weight": {"heavy"},
		})

		assert.Equal(t, 400, status)
		assert.Contains(t, body["error"], "weight")
	})

	t.Run("NonFiniteWeight", func(t *testing.T) {
		app, _, dst := setupTestApp(t)

		status, body := postForm(t, app, "/update_target", url.Values{
			"store_a": {"wilson_us"}, "store_b": {"signal_ca"},
			"sku_a": {"X1"}, "sku_b": {"X1"},
			"sync_weight": {"on"}, "weight": {"NaN"},
		})

		assert.Equal(t, 400, status)
		assert.Contains(t, body["error"], "weight")
		dst.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
		dst.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ZeroPrice", func(t *testing.T) {
		app, _, dst := setupTestApp(t)
		dst.On("FindBySKU", mock.Anything, "X1").Return(&catalog.Product{ID: 9}, nil)
		dst.On("Update", mock.Anything, 9, catalog.Payload{"price": "0"}).Return(&catalog.Product{ID: 9}, nil)

		status, body := postForm(t, app, "/update_target", url.Values{
			"store_a": {"wilson_us"}, "store_b": {"signal_ca"},
			"sku_a": {"X1"}, "sku_b": {"X1"},
			"sync_price": {"on"}, "price": {"0.00"},
		})

		assert.Equal(t, 200, status)
		assert.Equal(t, "updated", body["action"])
		dst.AssertExpectations(t)
	})

	t.Run("MissingInput", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		status, body := postForm(t, app, "/update_target", url.Values{"store_a": {"wilson_us"}})
		assert.Equal(t, 400, status)
		assert.Equal(t, "All store and SKU fields are required.", body["error"])
	})
}
