package integrity

import (
	"catalog-sync/core/logger"
	"catalog-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.StoreReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/stores", h.HandleStoresCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks store credentials, the store profile table and the SKU list bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})
	report["stores"] = h.service.CheckStores()

	if h.service.db == nil {
		report["database"] = map[string]interface{}{"status": "skipped"}
	} else if tbl, err := h.service.CheckDatabase(); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = tbl
	}

	if h.service.client == nil {
		report["storage"] = map[string]interface{}{"status": "skipped"}
	} else if err := h.service.CheckStorage(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]interface{}{"status": "ok", "bucket": h.service.bucket}
	}

	return c.JSON(report)
}

// HandleStoresCheck reports which stores are fully configured.
// @Summary Check Store Configuration
// @Description Reports, per store, which credential settings are missing. No store is contacted.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Store Report"
// @Router /integrity/stores [get]
func (h *Handler) HandleStoresCheck(c *fiber.Ctx) error {
	reports := h.service.CheckStores()

	configured := 0
	for _, r := range reports {
		if r.Configured {
			configured++
		}
	}
	if configured < len(reports) {
		logger.WithRayID(h.service.logger, c).Warn("Stores with missing credentials",
			zap.Int("configured", configured),
			zap.Int("total", len(reports)))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stores":  reports,
	})
}

// HandleDatabaseCheck checks the store profile table.
// @Summary Check Profile Table
// @Description Checks that the store_profiles table has every column the registry reads.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.TableReport "Table Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Profile table check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the SKU list bucket.
// @Summary Check Storage
// @Description Verifies that the configured bucket exists and is reachable.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.CheckStorage(c.Context()); err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok", "bucket": h.service.bucket})
}
