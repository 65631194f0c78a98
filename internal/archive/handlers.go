package archive

import (
	"errors"

	"trailviewer/internal/gallery"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Use(func(c *fiber.Ctx) error {
		if !svc.Enabled() {
			return fiber.NewError(fiber.StatusServiceUnavailable, ErrDisabled.Error())
		}
		return c.Next()
	})

	r.Get("/", func(c *fiber.Ctx) error {
		records, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(records)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		trails, err := gallery.UploadedTrails(c)
		if err != nil {
			return err
		}
		records := make([]Record, 0, len(trails))
		for _, t := range trails {
			rec, err := svc.Save(c.Context(), t, "upload")
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			records = append(records, rec)
		}
		return c.Status(fiber.StatusCreated).JSON(records)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		_, rec, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(errorStatus(err), err.Error())
		}
		return c.JSON(rec)
	})

	r.Get("/:id/geojson", func(c *fiber.Ctx) error {
		t, _, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(errorStatus(err), err.Error())
		}
		return c.JSON(t.FeatureCollection())
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(errorStatus(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func errorStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
