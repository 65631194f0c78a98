package server

import (
	"trailviewer/internal/archive"
	"trailviewer/internal/auth"
	"trailviewer/internal/config"
	"trailviewer/internal/db"
	"trailviewer/internal/gallery"
	"trailviewer/internal/render"
	"trailviewer/internal/source"
	"trailviewer/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App     *fiber.App
	Cfg     config.Config
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Stream  *stream.Hub
	Source  source.Source
	Archive *archive.Service
}

func NewServer(cfg config.Config, pg *pgxpool.Pool, redisClient *redis.Client, src source.Source) *Server {
	bodyLimit := cfg.MaxUploadMB << 20
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		Views:     render.Engine(),
		BodyLimit: bodyLimit,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)
	s := &Server{
		App:     app,
		Cfg:     cfg,
		DB:      pg,
		Redis:   redisClient,
		Stream:  hub,
		Source:  src,
		Archive: archive.NewService(db.FromPool(pg), hub),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"source":  s.Source.Name(),
			"archive": s.Archive.Enabled(),
		})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	catalog := render.NewCatalog(s.Cfg.DefaultTiles, s.Cfg.StadiaAPIKey)
	trails := gallery.NewService(s.Source, s.Cfg.TrailsGlob, source.NewCache(s.Redis, s.Cfg.CacheTTL))

	archive.RegisterRoutes(s.App.Group("/archive"), s.Archive, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
	gallery.RegisterRoutes(s.App, trails, catalog)
}
