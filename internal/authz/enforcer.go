package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds the in-memory policy for the dashboard. The only role
// today is the project investigator, who reads attendance data and submits
// monthly reports.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parsing authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("creating enforcer: %w", err)
	}

	policies := [][]string{
		{"pi", "attendance", "read"},
		{"pi", "calendar", "read"},
		{"pi", "notifications", "read"},
		{"pi", "submission", "write"},
		{"pi", "fieldtrip", "write"},
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("adding policy %v: %w", p, err)
		}
	}

	return enforcer, nil
}
