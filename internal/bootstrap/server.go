package bootstrap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	"github.com/nucareers/career-portal/internal/config"
	infrafile "github.com/nucareers/career-portal/internal/infrastructure/file"
	"github.com/nucareers/career-portal/internal/infrastructure/metrics"
	"github.com/nucareers/career-portal/internal/infrastructure/spreadsheet"
	httpecho "github.com/nucareers/career-portal/internal/interfaces/http/echo"
	"github.com/nucareers/career-portal/internal/logging"
)

// NewImportGraduates assembles the import coordinator shared by the API and portalctl.
func NewImportGraduates(cfg *config.Config, log logrus.FieldLogger, stores *Stores, uploads *infrafile.Uploads, observer app.ImportObserver) app.ImportGraduates {
	return app.NewImportGraduates(
		spreadsheet.NewParser(),
		stores.Graduates,
		uploads,
		log,
		app.ImportGraduatesConfig{
			BatchSize: cfg.ImportBatchSize,
			Observer:  observer,
			Runs:      stores.Runs,
		},
	)
}

func NewHTTPServer(cfg *config.Config, log *logrus.Logger, stores *Stores, registry *prometheus.Registry) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(logging.RequestLogger(log))
	server.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	uploads := infrafile.NewUploads(cfg.UploadDir)
	importMetrics := metrics.NewImportMetrics(registry)

	importHandler := httpecho.NewImportHandler(
		NewImportGraduates(cfg, log, stores, uploads, importMetrics),
		app.NewListImportRuns(stores.Runs),
		uploads,
		log,
	)
	graduateHandler := httpecho.NewGraduateHandler(
		app.NewListGraduates(stores.Graduates),
		app.NewGetGraduate(stores.Graduates),
		app.NewUpdateGraduateProfile(stores.Graduates),
		app.NewDeleteGraduate(stores.Graduates),
		log,
	)
	auth := httpecho.NewAuthenticator(cfg.Auth.AccessSecret, cfg.Auth.CookieName)

	httpecho.RegisterRoutes(server, auth, importHandler, graduateHandler)

	server.GET(cfg.MetricsPath, echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return server
}
