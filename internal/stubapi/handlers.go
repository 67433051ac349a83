package stubapi

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

type handlers struct {
	store *Store
}

type loginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type loginResponse struct {
	domain.User
	Token string `json:"token"`
}

func (h *handlers) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid login payload")
	}
	user, ok := h.store.Authenticate(req.Email, req.Password, req.Role)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	}
	if !user.Active {
		return fiber.NewError(http.StatusForbidden, "account blocked")
	}
	token, err := issueToken(*user)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "token signing failed")
	}
	return c.JSON(loginResponse{User: *user, Token: token})
}

func (h *handlers) usersByRole(c *fiber.Ctx) error {
	role := domain.Role(strings.ToUpper(c.Params("role")))
	if !role.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown role")
	}
	return c.JSON(h.store.UsersByRole(role))
}

func (h *handlers) setUserBlocked(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	blocked := c.QueryBool("blocked")
	if !h.store.SetUserBlocked(int64(userID), blocked) {
		return fiber.NewError(http.StatusNotFound, "user not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *handlers) raiseTicket(c *fiber.Ctx) error {
	var draft domain.TicketDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid ticket payload")
	}
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Description) == "" {
		return fiber.NewError(http.StatusBadRequest, "subject and description are required")
	}
	if draft.Priority == "" {
		draft.Priority = domain.TicketPriorityLow
	}
	if !draft.Priority.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown priority")
	}
	return c.JSON(h.store.CreateTicket(draft))
}

func (h *handlers) userTickets(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	return c.JSON(h.store.TicketsByUser(int64(userID)))
}

func (h *handlers) agentTickets(c *fiber.Ctx) error {
	agentID, err := c.ParamsInt("agentId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid agent id")
	}
	return c.JSON(h.store.TicketsByAgent(int64(agentID)))
}

func (h *handlers) allTickets(c *fiber.Ctx) error {
	return c.JSON(h.store.AllTickets())
}

func (h *handlers) updateTicketStatus(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("ticketId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid ticket id")
	}
	status := domain.TicketStatus(strings.ToUpper(c.Params("status")))
	if !status.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown status")
	}
	ticket, ok := h.store.UpdateTicketStatus(int64(ticketID), status)
	if !ok {
		return fiber.NewError(http.StatusNotFound, "ticket not found")
	}
	return c.JSON(ticket)
}

func (h *handlers) userBookings(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	return c.JSON(h.store.BookingsByUser(int64(userID)))
}

func (h *handlers) agentBookings(c *fiber.Ctx) error {
	agentID, err := c.ParamsInt("agentId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid agent id")
	}
	return c.JSON(h.store.BookingsByAgent(int64(agentID)))
}

func (h *handlers) packages(c *fiber.Ctx) error {
	return c.JSON(h.store.Packages())
}

func (h *handlers) agentPackages(c *fiber.Ctx) error {
	agentID, err := c.ParamsInt("agentId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid agent id")
	}
	return c.JSON(h.store.PackagesByAgent(int64(agentID)))
}

func (h *handlers) adminStats(c *fiber.Ctx) error {
	return c.JSON(h.store.AdminStats())
}

func (h *handlers) agentStats(c *fiber.Ctx) error {
	agentID, err := c.ParamsInt("agentId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid agent id")
	}
	return c.JSON(h.store.AgentStats(int64(agentID)))
}
