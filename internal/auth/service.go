package auth

import (
	domainerrors "skylark-ops/internal/errors"
	"skylark-ops/internal/jwt"
)

// Roles recognized by the route guards: viewers read, coordinators mutate,
// admins additionally manage the roster and fleet records themselves.
const (
	RoleViewer      = "viewer"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

func validRole(role string) bool {
	switch role {
	case RoleViewer, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}

type Service interface {
	GenerateToken(name, role string) (string, error)
}

type authService struct {
	jwt *jwt.Service
}

func NewAuthService(jwt *jwt.Service) Service {
	return &authService{jwt: jwt}
}

func (s *authService) GenerateToken(name, role string) (string, error) {
	if !validRole(role) {
		return "", domainerrors.NewValidation("role must be one of viewer, coordinator, admin")
	}
	return s.jwt.GenerateToken(name, role)
}
