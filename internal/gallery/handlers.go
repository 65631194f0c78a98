package gallery

import (
	"errors"

	"trailviewer/internal/render"
	"trailviewer/internal/source"
	"trailviewer/internal/trail"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, catalog *render.Catalog) {
	r.Get("/", func(c *fiber.Ctx) error {
		trails, err := svc.Trails(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Render("gallery", render.NewPage(trails, catalog.Lookup(c.Query("tiles")), catalog))
	})

	r.Get("/tiles", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"default":   catalog.Default().Name,
			"providers": catalog.Providers(),
		})
	})

	r.Get("/trails", func(c *fiber.Ctx) error {
		trails, err := svc.Trails(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(Summaries(trails))
	})

	r.Get("/trails/geojson", func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		t, err := svc.Load(c.Context(), name)
		if err != nil {
			return fiber.NewError(loadStatus(err), err.Error())
		}
		return c.JSON(t.FeatureCollection())
	})

	r.Post("/upload", func(c *fiber.Ctx) error {
		trails, err := UploadedTrails(c)
		if err != nil {
			return err
		}
		if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return c.JSON(Summaries(trails))
		}
		page := render.NewPage(trails, catalog.Lookup(c.FormValue("tiles")), catalog)
		page.Uploaded = true
		return c.Render("gallery", page)
	})
}

// UploadedTrails parses the multipart "files" field of an upload request.
func UploadedTrails(c *fiber.Ctx) ([]trail.Trail, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	trails, err := ParseUploads(form.File["files"])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return trails, nil
}

func loadStatus(err error) int {
	switch {
	case errors.Is(err, ErrOutsideSet), errors.Is(err, source.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
