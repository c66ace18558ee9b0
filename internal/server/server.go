package server

import (
	"github.com/fadilmartias/submitme/internal/config"
	"github.com/fadilmartias/submitme/internal/domain/fiber/handler"
	"github.com/fadilmartias/submitme/internal/middleware"
	"github.com/fadilmartias/submitme/internal/usecase"
	"github.com/fadilmartias/submitme/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for form boundaries and headers on top of
// the file itself, so the per-file check in the handler reports the 413.
const multipartOverhead = 64 * 1024

type Dependencies struct {
	CV     *usecase.CVUsecase
	Answer *usecase.AnswerUsecase
	Logger *zap.Logger
}

// New builds the Fiber application with the middleware stack and routes.
func New(cfg *config.Config, deps Dependencies) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	devMode := !cfg.App.IsProduction()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Upload.MaxSize + multipartOverhead,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return util.ErrorResponse(c, util.ErrorFormat(err, "Internal Server Error", devMode))
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(middleware.RequestLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: devMode,
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return !devMode
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window))

	handler.NewHealthHandler().RegisterRoutes(app)
	handler.NewCVHandler(deps.CV, cfg.Upload.MaxSize, devMode).RegisterRoutes(app)
	handler.NewAnswerHandler(deps.Answer, devMode).RegisterRoutes(app)

	return app
}
