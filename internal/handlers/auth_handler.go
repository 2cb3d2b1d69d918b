package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shoplite/internal/middleware"
	"shoplite/internal/services"
	"shoplite/internal/token"
	"shoplite/pkg/logger"
)

// AuthHandler handles HTTP requests for the user service.
type AuthHandler struct {
	service  *services.AuthService
	codec    *token.Codec
	validate *validator.Validate
	log      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService, codec *token.Codec, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		codec:    codec,
		validate: validator.New(),
		log:      log.Sub("auth_handler"),
	}
}

// RegisterRoutes registers the user service routes.
func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/register", h.HandleRegister)
	app.Post("/login", h.HandleLogin)
	app.Get("/profile", middleware.AuthRequired(h.codec), h.HandleProfile)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	// A malformed body behaves like empty input: the field checks below
	// produce the contract error, same as the historical behavior.
	_ = c.BodyParser(&req)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password required",
		})
	}

	user, err := h.service.Register(req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin handles user login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	_ = c.BodyParser(&req)

	tok, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"token": tok})
}

// HandleProfile returns the authenticated user's public record.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	user, err := h.service.Profile(middleware.Username(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}
