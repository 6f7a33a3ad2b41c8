// Package access decides which resources a caller may see based on the
// title of their role.
package access

import (
	"strings"

	"github.com/nurpe/ops-backend/internal/model"
)

type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeOwn:
		return "own"
	default:
		return "none"
	}
}

const (
	RoleAdmin      = "ADMIN"
	RoleLegal      = "LEGAL"
	RoleAccounting = "ACCOUNTING"
	RoleNone       = "NO_ROLE"
)

var roleAliases = map[string]string{
	"ADMIN":         RoleAdmin,
	"ADMINISTRADOR": RoleAdmin,
	"LEGAL":         RoleLegal,
	"ACCOUNTING":    RoleAccounting,
	"CONTABLE":      RoleAccounting,
}

// CanonicalRole maps a stored role title to one of the supported roles.
// Unknown or empty titles map to RoleNone.
func CanonicalRole(title string) string {
	if role, ok := roleAliases[strings.ToUpper(strings.TrimSpace(title))]; ok {
		return role
	}
	return RoleNone
}

func ResolveScope(title string) Scope {
	switch CanonicalRole(title) {
	case RoleAdmin, RoleAccounting:
		return ScopeAll
	case RoleLegal:
		return ScopeOwn
	default:
		return ScopeNone
	}
}

// ProjectAreas returns the department areas whose projects a role may list.
// all is true when no area filter applies.
func ProjectAreas(title string) (areas []string, all bool) {
	switch CanonicalRole(title) {
	case RoleAdmin:
		return nil, true
	case RoleLegal:
		return []string{model.AreaLegal, model.AreaLegalAndAccounting}, false
	case RoleAccounting:
		return []string{model.AreaAccounting, model.AreaLegalAndAccounting}, false
	default:
		return nil, false
	}
}

// CanManage reports whether a role may administer roles and the role of
// other employees.
func CanManage(title string) bool {
	return CanonicalRole(title) == RoleAdmin
}

// IsStaff reports whether a role belongs to one of the firm's departments.
func IsStaff(title string) bool {
	return CanonicalRole(title) != RoleNone
}
