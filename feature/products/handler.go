package products

import (
	"errors"
	"fmt"

	"catalog-sync/core/catalog"
	"catalog-sync/core/logger"
	"catalog-sync/core/mapping"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/registry"
	"catalog-sync/core/skulist"
	"catalog-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/stores", h.HandleStores)
	app.Post("/import", h.HandleImport)
	app.Post("/batch_import", h.HandleBatchImport)
	app.Post("/compare", h.HandleCompare)
	app.Post("/get_product", h.HandleGetProduct)
	app.Post("/update_target", h.HandleUpdateTarget)
}

// HandleStores lists the configured stores.
// @Summary List Stores
// @Description Returns every configured store key with its display name.
// @Tags products
// @Produce json
// @Success 200 {object} map[string]interface{} "Stores"
// @Router /stores [get]
func (h *Handler) HandleStores(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"stores":  h.service.Stores(),
	})
}

// HandleImport copies one SKU between stores.
// @Summary Import Product
// @Description Creates the product in the target store, or updates it when update_if_exists is "on".
// @Tags products
// @Accept x-www-form-urlencoded
// @Produce json
// @Param sku formData string true "SKU"
// @Param source_store formData string true "Source store key"
// @Param target_store formData string true "Target store key"
// @Param update_if_exists formData string false "on, true or 1 updates existing products"
// @Success 200 {object} map[string]interface{} "Import Result"
// @Failure 400 {object} map[string]interface{} "Missing input"
// @Failure 404 {object} map[string]interface{} "SKU not in source store"
// @Router /import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sku := c.FormValue("sku")
	source := c.FormValue("source_store")
	target := c.FormValue("target_store")
	update := utils.ToBool(c.FormValue("update_if_exists"))

	if sku == "" {
		return badRequest(c, "No SKU provided.")
	}
	if source == "" || target == "" {
		return badRequest(c, "Both source and target stores must be selected.")
	}

	res, err := h.service.Import(c.Context(), source, target, sku, update)
	if err != nil {
		l.Warn("Import failed", zap.String("sku", sku), zap.Error(err))
		return fail(c, err)
	}

	if !res.Success {
		return c.JSON(fiber.Map{
			"success": false,
			"action":  res.Action,
			"error":   fmt.Sprintf("Failed to import or update SKU: %s (%s)", sku, res.Message),
		})
	}

	verb := "imported"
	if res.Action == reconcile.ActionUpdated {
		verb = "updated"
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"action":     res.Action,
		"product_id": res.ProductID,
		"message": fmt.Sprintf("Successfully %s SKU: %s from %s to %s",
			verb, sku, h.service.StoreName(source), h.service.StoreName(target)),
	})
}

// HandleBatchImport copies a list of SKUs between stores.
// @Summary Batch Import Products
// @Description Imports every SKU from an uploaded file (sku_file, text or CSV) or a newline separated sku_list.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param source_store formData string true "Source store key"
// @Param target_store formData string true "Target store key"
// @Param update_if_exists formData string false "on, true or 1 updates existing products"
// @Param sku_file formData file false "SKU list file"
// @Param sku_list formData string false "Newline separated SKUs"
// @Success 200 {object} map[string]interface{} "Per-SKU results"
// @Failure 400 {object} map[string]interface{} "Missing input"
// @Router /batch_import [post]
func (h *Handler) HandleBatchImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	source := c.FormValue("source_store")
	target := c.FormValue("target_store")
	update := utils.ToBool(c.FormValue("update_if_exists"))

	if source == "" || target == "" {
		return badRequest(c, "Both source and target stores must be selected.")
	}

	var skus []string
	if fh, err := c.FormFile("sku_file"); err == nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, "Could not read uploaded file.")
		}
		defer f.Close()
		if skus, err = h.service.ParseSKUFile(fh.Filename, f); err != nil {
			return badRequest(c, err.Error())
		}
	} else if list := c.FormValue("sku_list"); list != "" {
		skus = skulist.ParseString(list)
	}

	if len(skus) == 0 {
		return badRequest(c, "No SKUs provided.")
	}

	l.Info("Starting batch import",
		zap.String("source", source),
		zap.String("target", target),
		zap.Int("count", len(skus)))

	results, summary := h.service.BatchImport(c.Context(), source, target, skus, update)

	l.Info("Batch import finished",
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))

	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
		"summary": summary,
	})
}

// HandleCompare shows a SKU side by side in two stores.
// @Summary Compare Products
// @Description Reads the SKU from store A and store B (sku_b defaults to sku_a). Nothing is written.
// @Tags products
// @Accept x-www-form-urlencoded
// @Produce json
// @Param store_a formData string false "Store A key" default(wilson_us)
// @Param store_b formData string false "Store B key" default(signal_ca)
// @Param sku_a formData string true "SKU in store A"
// @Param sku_b formData string false "SKU in store B"
// @Success 200 {object} map[string]interface{} "Comparison"
// @Failure 400 {object} map[string]interface{} "Missing input"
// @Failure 404 {object} map[string]interface{} "SKU not in store A"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	storeA := c.FormValue("store_a", "wilson_us")
	storeB := c.FormValue("store_b", "signal_ca")
	skuA := c.FormValue("sku_a")
	skuB := c.FormValue("sku_b")

	if skuA == "" {
		return badRequest(c, "Store A SKU is required.")
	}

	cmp, err := h.service.Compare(c.Context(), storeA, storeB, skuA, skuB)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"product_a":    cmp.RecordA,
		"product_b":    cmp.RecordB,
		"store_a_name": cmp.StoreAName,
		"store_b_name": cmp.StoreBName,
		"sku_b":        cmp.SKUB,
	})
}

// HandleGetProduct reads one product.
// @Summary Get Product
// @Description Returns the normalized product for a SKU, with its brand name resolved.
// @Tags products
// @Accept x-www-form-urlencoded
// @Produce json
// @Param store formData string true "Store key"
// @Param sku formData string true "SKU"
// @Success 200 {object} map[string]interface{} "Product"
// @Failure 400 {object} map[string]interface{} "Missing input"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /get_product [post]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	store := c.FormValue("store")
	sku := c.FormValue("sku")

	if store == "" || sku == "" {
		return badRequest(c, "Store and SKU are required.")
	}

	rec, err := h.service.Get(c.Context(), store, sku)
	if err != nil {
		return fail(c, err)
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Product not found."})
	}

	return c.JSON(fiber.Map{"success": true, "product": rec})
}

// HandleUpdateTarget writes selected fields to the product in store B.
// @Summary Update Target Product
// @Description Every sync_<field> key selects a field; its value is taken from the <field> key. custom_fields and images accept JSON text.
// @Tags products
// @Accept x-www-form-urlencoded
// @Produce json
// @Param store_a formData string true "Store A key"
// @Param store_b formData string true "Store B key (written)"
// @Param sku_a formData string true "SKU in store A"
// @Param sku_b formData string true "SKU in store B (written)"
// @Success 200 {object} map[string]interface{} "Update Result"
// @Failure 400 {object} map[string]interface{} "Missing or invalid input"
// @Failure 404 {object} map[string]interface{} "SKU not in store B"
// @Router /update_target [post]
func (h *Handler) HandleUpdateTarget(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	storeA := c.FormValue("store_a")
	storeB := c.FormValue("store_b")
	skuA := c.FormValue("sku_a")
	skuB := c.FormValue("sku_b")

	if storeA == "" || storeB == "" || skuA == "" || skuB == "" {
		return badRequest(c, "All store and SKU fields are required.")
	}

	form := formValues(c)
	keys := make([]string, 0, len(form))
	values := make(map[string]any, len(form))
	for k, v := range form {
		keys = append(keys, k)
		values[k] = v
	}
	sel := mapping.SelectionFromKeys(keys)

	l.Info("Updating target product",
		zap.String("store", storeB),
		zap.String("sku", skuB),
		zap.Strings("fields", sel.Fields()))

	res, err := h.service.UpdateTarget(c.Context(), storeB, skuB, sel, values)
	if err != nil {
		l.Warn("Update failed", zap.String("sku", skuB), zap.Error(err))
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"action":  res.Action,
		"message": fmt.Sprintf("Successfully updated product %s in target store", skuB),
	})
}

// formValues collects url-encoded and multipart form fields.
func formValues(c *fiber.Ctx) map[string]string {
	values := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = string(v)
	})
	if form, err := c.MultipartForm(); err == nil {
		for k, v := range form.Value {
			if len(v) > 0 {
				values[k] = v[0]
			}
		}
	}
	return values
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
}

// fail maps engine errors to a status code and a structured body.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func errorStatus(err error) int {
	var notFound *reconcile.NotFoundError
	var cfgErr *registry.ConfigurationError
	var coercion *mapping.FieldCoercionError
	var remote *catalog.RemoteError

	switch {
	case errors.Is(err, reconcile.ErrMissingSKU), errors.As(err, &cfgErr), errors.As(err, &coercion):
		return fiber.StatusBadRequest
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &remote):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
