package rbac_test

import (
	"testing"

	"github.com/Ankitkumar028/rider-fleet/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := rbac.NewEnforcer("model.conf", "policy.csv")
	assert.NoError(t, err)
	return rbac.NewService(enforcer)
}

func TestService_Enforce(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name    string
		req     rbac.EnforceRequest
		allowed bool
	}{
		{"admin creates riders", rbac.EnforceRequest{Role: "admin", Resource: "riders", Action: "create"}, true},
		{"admin exports riders", rbac.EnforceRequest{Role: "admin", Resource: "riders", Action: "export"}, true},
		{"admin deletes partnerships", rbac.EnforceRequest{Role: "admin", Resource: "partnerships", Action: "delete"}, true},
		{"rider reads own progress", rbac.EnforceRequest{Role: "rider", Resource: "progress", Action: "read"}, true},
		{"rider reads own profile", rbac.EnforceRequest{Role: "rider", Resource: "profile", Action: "read"}, true},
		{"rider cannot read the fleet", rbac.EnforceRequest{Role: "rider", Resource: "riders", Action: "read"}, false},
		{"rider cannot record progress", rbac.EnforceRequest{Role: "rider", Resource: "progress", Action: "create"}, false},
		{"rider cannot read stats", rbac.EnforceRequest{Role: "rider", Resource: "stats", Action: "read"}, false},
		{"unknown role denied", rbac.EnforceRequest{Role: "auditor", Resource: "riders", Action: "read"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
