package service

import "blogapi/internal/models"

// CanAccess decides whether p may act on a resource owned by ownerID.
// Admins are always allowed. When requiredRole is admin nobody else is;
// otherwise only the owner is.
func CanAccess(p models.Principal, ownerID int, requiredRole string) bool {
	if p.IsAdmin() {
		return true
	}
	if requiredRole == models.RoleAdmin {
		return false
	}
	return p.ID != 0 && p.ID == ownerID
}

// requireAdmin returns ErrAdminRequired unless p is an admin.
func requireAdmin(p models.Principal) error {
	if !CanAccess(p, 0, models.RoleAdmin) {
		return ErrAdminRequired
	}
	return nil
}
