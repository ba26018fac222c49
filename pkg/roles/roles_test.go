package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIn(t *testing.T) {
	staff := []Role{Admin, Employee}

	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin is staff", Admin, true},
		{"employee is staff", Employee, true},
		{"customer is not staff", Customer, false},
		{"unknown role", Role("guest"), false},
		{"empty role", Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.In(staff))
		})
	}
}
