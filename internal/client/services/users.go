package services

import (
	"context"
	"net/mail"
	"strings"

	"github.com/buperadmin/kwitansi-cli/internal/client/api"
	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

// UserService manages admin accounts.
type UserService interface {
	RegisterAdmin(ctx context.Context, admin models.NewAdmin) error
}

type userService struct {
	api api.Client
	log logging.Logger
}

func NewUserService(client api.Client, log logging.Logger) UserService {
	return &userService{api: client, log: log.With("component", "users")}
}

func (s *userService) RegisterAdmin(ctx context.Context, admin models.NewAdmin) error {
	switch {
	case strings.TrimSpace(admin.Fullname) == "":
		return &ValidationError{Field: "fullname", Reason: "is required"}
	case strings.TrimSpace(admin.Username) == "":
		return &ValidationError{Field: "username", Reason: "is required"}
	case !validEmail(admin.Email):
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	case strings.TrimSpace(admin.Jabatan) == "":
		return &ValidationError{Field: "jabatan", Reason: "is required"}
	case len(admin.Password) < 6:
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	// Full names are stored upper-case.
	admin.Fullname = strings.ToUpper(admin.Fullname)

	if err := s.api.RegisterAdmin(ctx, admin); err != nil {
		return err
	}
	s.log.Info(ctx, "admin registered", "username", admin.Username)
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
