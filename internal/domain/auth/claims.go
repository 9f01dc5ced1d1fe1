package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Roles issued by the identity provider. This backend only reads them.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// EmployeeRefFromContext extracts the employee document ref from the
// verified token claims.
func EmployeeRefFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", ErrInvalidToken
	}
	ref, ok := claims["employee_ref"].(string)
	if !ok || ref == "" {
		return "", ErrEmployeeClaimNeeded
	}
	return ref, nil
}

// RoleFromContext extracts the role claim, empty if absent.
func RoleFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
