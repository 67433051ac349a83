package stubapi

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New assembles the stub backend as a fiber app.
func New(store *Store, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(errorHandlingMiddleware(logger))
	app.Use(requestLogger(logger))

	h := &handlers{store: store}

	app.Post("/api/v1/auth/login", h.login)
	app.Get("/api/v1/users/role/:role", h.usersByRole)
	app.Put("/api/v1/users/:id/block", h.setUserBlocked)

	app.Post("/api/support", h.raiseTicket)
	app.Get("/api/support/user/:userId", h.userTickets)
	app.Get("/api/support/agent/:agentId", h.agentTickets)
	app.Get("/api/support/all", h.allTickets)
	app.Put("/api/support/:ticketId/status/:status", h.updateTicketStatus)

	app.Get("/api/bookings/user/:userId", h.userBookings)
	app.Get("/api/bookings/agent/:agentId", h.agentBookings)

	app.Get("/api/packages", h.packages)
	app.Get("/api/packages/agent/:agentId", h.agentPackages)

	app.Get("/api/stats/admin", h.adminStats)
	app.Get("/api/stats/agent/:agentId", h.agentStats)

	return app
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = fiber.NewError(http.StatusInternalServerError, "internal server error")
			}
			if err != nil {
				status := http.StatusInternalServerError
				message := err.Error()
				var fiberErr *fiber.Error
				if e, ok := err.(*fiber.Error); ok {
					fiberErr = e
					status = fiberErr.Code
					message = fiberErr.Message
				}
				c.Status(status)
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"code":    http.StatusText(status),
					"message": message,
				}})
				err = nil
			}
		}()
		return c.Next()
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)))
		return err
	}
}
