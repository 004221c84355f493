package models

import (
	"reflect"
	"testing"
)

func TestAuthorityForRole(t *testing.T) {
	tests := []struct {
		role string
		want Authority
		ok   bool
	}{
		{"student", AuthorityStudent, true},
		{"lecturer", AuthorityLecturer, true},
		{"ta", AuthorityTA, true},
		{"admin", AuthorityAdmin, true},
		{"Student", AuthorityStudent, true},
		{"  ADMIN  ", AuthorityAdmin, true},
		{"professor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := AuthorityForRole(tt.role)
		if ok != tt.ok || got != tt.want {
			t.Errorf("AuthorityForRole(%q) = (%q, %v), want (%q, %v)", tt.role, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAuthoritiesForRolesDropsUnknown(t *testing.T) {
	got := AuthoritiesForRoles([]string{"student", "wizard", "TA"})
	want := []Authority{AuthorityStudent, AuthorityTA}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AuthoritiesForRoles() = %v, want %v", got, want)
	}
}

func TestUserHasRole(t *testing.T) {
	user := &User{Username: "jdoe", Roles: []string{"Student", "ta"}}

	if !user.HasRole("student") {
		t.Error("HasRole(student) = false, want true")
	}
	if !user.HasRole("TA") {
		t.Error("HasRole(TA) = false, want true")
	}
	if user.HasRole("admin") {
		t.Error("HasRole(admin) = true, want false")
	}
	if user.HasRole("wizard") {
		t.Error("HasRole(wizard) = true, want false")
	}
}
