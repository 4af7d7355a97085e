package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"bonepiledash/internal/service"
	"bonepiledash/internal/web"
)

// snListResponse is the payload for the serial-number drill-downs.
type snListResponse struct {
	SNs   []string `json:"sns"`
	Count int      `json:"count"`
}

type failEmptyActionItem struct {
	SN            string `json:"sn"`
	NVDisposition string `json:"nv_disposition"`
}

type inProcessItem struct {
	SN            string `json:"sn"`
	NVDisposition string `json:"nv_disposition"`
	IGSAction     string `json:"igs_action"`
}

type waitingMaterialItem struct {
	SN            string `json:"sn"`
	NVDisposition string `json:"nv_disposition"`
	IGSAction     string `json:"igs_action"`
	IGSStatus     string `json:"igs_status"`
}

type recordListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal; classification and aggregation live in the service
// and stats packages.
func RegisterRoutes(app *fiber.App, svc service.BonepileService, reg *prometheus.Registry) {
	// Dashboard and upload pages are embedded in the binary.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Type("html").SendString(web.IndexHTML)
	})
	app.Get("/upload", func(c *fiber.Ctx) error {
		return c.Type("html").SendString(web.UploadHTML)
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Prometheus scrape endpoint served from the app's own registry.
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Upload workbook endpoint (multipart/form-data, field name: file)
	app.Post("/upload", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(res)
	})

	api := app.Group("/api")

	api.Get("/summary", func(c *fiber.Ctx) error {
		sum, err := svc.Summary(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sum)
	})

	// Unique serial numbers per category: total, fail or pass.
	api.Get("/sn-list/:category", func(c *fiber.Ctx) error {
		sns, err := svc.SNList(c.UserContext(), c.Params("category"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(snListResponse{SNs: sns, Count: len(sns)})
	})

	api.Get("/fail-empty-action", func(c *fiber.Ctx) error {
		recs, err := svc.FailEmptyAction(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		items := make([]failEmptyActionItem, 0, len(recs))
		for _, r := range recs {
			items = append(items, failEmptyActionItem{SN: r.SN, NVDisposition: r.NVDisposition})
		}
		return c.JSON(recordListResponse[failEmptyActionItem]{Data: items, Count: len(items)})
	})

	api.Get("/in-process", func(c *fiber.Ctx) error {
		recs, err := svc.InProcess(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		items := make([]inProcessItem, 0, len(recs))
		for _, r := range recs {
			items = append(items, inProcessItem{
				SN:            r.SN,
				NVDisposition: r.NVDisposition,
				IGSAction:     r.IGSAction,
			})
		}
		return c.JSON(recordListResponse[inProcessItem]{Data: items, Count: len(items)})
	})

	api.Get("/waiting-material", func(c *fiber.Ctx) error {
		recs, err := svc.WaitingMaterial(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		items := make([]waitingMaterialItem, 0, len(recs))
		for _, r := range recs {
			items = append(items, waitingMaterialItem{
				SN:            r.SN,
				NVDisposition: r.NVDisposition,
				IGSAction:     r.IGSAction,
				IGSStatus:     r.IGSStatus,
			})
		}
		return c.JSON(recordListResponse[waitingMaterialItem]{Data: items, Count: len(items)})
	})

	// Time-limited download link for the archived copy of the current workbook.
	api.Get("/archive/latest", func(c *fiber.Ctx) error {
		url, err := svc.ArchiveURL(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	})
}
