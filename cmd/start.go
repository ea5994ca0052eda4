package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/core/middleware/auth"
	"catalog-sync/core/middleware/rayid"

	"catalog-sync/feature/integrity"
	"catalog-sync/feature/products"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-sync/docs/swagger"
)

// @title Catalog Sync API
// @version 1.0
// @description API for reconciling product catalogs between BigCommerce stores.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(true)
		if err != nil {
			return err
		}
		logg := d.logger
		defer logg.Sync()

		if d.db != nil {
			logg.Info("Connected to profile database")
		}

		store, err := d.storageClient()
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             d.cfg.Server.BodyLimitBytes(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(products.NewFeature(d.engine, logg))
		mgr.Register(integrity.NewFeature(d.registry.Profiles(), d.db, store, d.cfg.Storage.Bucket, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		app.Use(auth.New(auth.Config{
			ApiKey: d.cfg.Server.ApiKey,
			Skip:   []string{"/swagger", "/metrics"},
		}))
		if !d.cfg.Server.IsProtected() {
			logg.Warn("API key is not set, endpoints are unprotected")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", d.cfg.Server.Port),
				zap.Strings("stores", d.cfg.Stores.KeyList()),
			)
			if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
