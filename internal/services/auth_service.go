package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shoplite/internal/errs"
	"shoplite/internal/metrics"
	"shoplite/internal/models"
	"shoplite/internal/repositories"
	"shoplite/internal/token"
	"shoplite/pkg/logger"
	"shoplite/pkg/rabbitmq"
)

// AuthService handles registration, login and profile lookup for the user
// service.
type AuthService struct {
	users  repositories.UserRepository
	codec  *token.Codec
	log    *logger.Logger
	stats  *metrics.Metrics
	events rabbitmq.Publisher
}

// NewAuthService creates a new AuthService. events may be nil to disable
// event publishing.
func NewAuthService(users repositories.UserRepository, codec *token.Codec, log *logger.Logger, stats *metrics.Metrics, events rabbitmq.Publisher) *AuthService {
	return &AuthService{
		users:  users,
		codec:  codec,
		log:    log.Sub("auth_service"),
		stats:  stats,
		events: events,
	}
}

// Register creates a new user record and returns its public projection.
// Username whitespace is trimmed before any check; nothing is stored when
// validation or the uniqueness check fails.
func (s *AuthService) Register(username, password, name, email string) (*models.PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errs.Validation("username and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errs.Conflict("username already exists")
		}
		return nil, fmt.Errorf("store user: %w", err)
	}

	s.log.Info().Str("username", username).Int64("id", user.ID).Msg("user registered")
	if s.stats != nil {
		s.stats.UserRegistrations.Inc()
	}
	s.publish("user.registered", user.Public())

	public := user.Public()
	return &public, nil
}

// Login verifies the credentials and issues a fresh token. Unknown usernames
// and wrong passwords produce the same error so callers cannot probe which
// usernames exist.
func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", errs.Auth("invalid credentials")
		}
		return "", fmt.Errorf("look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.Auth("invalid credentials")
	}

	tok, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	s.log.Info().Str("username", username).Msg("login successful")
	return tok, nil
}

// Profile returns the public record for an already-verified username. A token
// that decodes to a username no longer present is indistinguishable from an
// invalid token.
func (s *AuthService) Profile(username string) (*models.PublicUser, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errs.Auth("invalid token")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

func (s *AuthService) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(eventType, payload); err != nil {
		// Event delivery is best effort; the registration itself stands.
		s.log.Warn().Err(err).Str("event", eventType).Msg("event publish failed")
	}
}
