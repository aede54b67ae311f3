package services

import (
	"context"

	"github.com/tawan/eduadmin/internal/app/models"
)

// RoleStore reads the seeded role reference table
type RoleStore interface {
	GetAll(ctx context.Context) ([]models.Role, error)
}

// RoleService exposes the role reference data
type RoleService struct {
	roles RoleStore
}

// NewRoleService creates a new RoleService
func NewRoleService(roles RoleStore) *RoleService {
	return &RoleService{roles: roles}
}

// GetAll lists the seeded roles
func (s *RoleService) GetAll(ctx context.Context) ([]models.Role, error) {
	return s.roles.GetAll(ctx)
}
