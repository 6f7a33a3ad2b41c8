package access

import (
	"reflect"
	"testing"

	"github.com/nurpe/ops-backend/internal/model"
)

func TestResolveScope(t *testing.T) {
	tests := []struct {
		title string
		want  Scope
	}{
		{"ADMIN", ScopeAll},
		{"admin", ScopeAll},
		{" Administrador ", ScopeAll},
		{"ACCOUNTING", ScopeAll},
		{"contable", ScopeAll},
		{"LEGAL", ScopeOwn},
		{"Legal", ScopeOwn},
		{"", ScopeNone},
		{"NO_ROLE", ScopeNone},
		{"intern", ScopeNone},
	}

	for _, tt := range tests {
		if got := ResolveScope(tt.title); got != tt.want {
			t.Errorf("ResolveScope(%q) = %s, want %s", tt.title, got, tt.want)
		}
	}
}

func TestProjectAreas(t *testing.T) {
	areas, all := ProjectAreas("admin")
	if !all || areas != nil {
		t.Fatalf("admin: expected all areas, got %v (all=%v)", areas, all)
	}

	areas, all = ProjectAreas("LEGAL")
	if all || !reflect.DeepEqual(areas, []string{model.AreaLegal, model.AreaLegalAndAccounting}) {
		t.Errorf("legal: unexpected areas %v (all=%v)", areas, all)
	}

	areas, all = ProjectAreas("Accounting")
	if all || !reflect.DeepEqual(areas, []string{model.AreaAccounting, model.AreaLegalAndAccounting}) {
		t.Errorf("accounting: unexpected areas %v (all=%v)", areas, all)
	}

	areas, all = ProjectAreas("")
	if all || len(areas) != 0 {
		t.Errorf("no role: expected no areas, got %v (all=%v)", areas, all)
	}
}

func TestRoleGates(t *testing.T) {
	tests := []struct {
		title  string
		manage bool
		staff  bool
	}{
		{"ADMIN", true, true},
		{"administrador", true, true},
		{"LEGAL", false, true},
		{"CONTABLE", false, true},
		{"", false, false},
		{"intern", false, false},
	}

	for _, tt := range tests {
		if got := CanManage(tt.title); got != tt.manage {
			t.Errorf("CanManage(%q) = %v, want %v", tt.title, got, tt.manage)
		}
		if got := IsStaff(tt.title); got != tt.staff {
			t.Errorf("IsStaff(%q) = %v, want %v", tt.title, got, tt.staff)
		}
	}
}
