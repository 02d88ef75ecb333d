package authz

import (
	"context"
	"fmt"

	"directory-api/internal/model"
	"directory-api/pkg/log"
	"directory-api/pkg/metrics"
)

type Options struct {
	// EnforceStubbedLocationChecks turns on location checks for policies whose
	// scope check is not yet settled. Targets with no location stay gate-only.
	EnforceStubbedLocationChecks bool
}

// Engine evaluates the policy table. Decide and DecideLocations are pure;
// Record carries the side effects.
type Engine struct {
	policies map[Resource]Policy
	opts     Options
	sec      *SecurityLogger
}

// New builds an engine from the embedded policy table.
func New(l log.Logger, opts Options) (*Engine, error) {
	return NewWithPolicies(l, defaultPolicies, opts)
}

func NewWithPolicies(l log.Logger, data []byte, opts Options) (*Engine, error) {
	policies, err := ParsePolicies(data)
	if err != nil {
		return nil, err
	}
	return &Engine{
		policies: policies,
		opts:     opts,
		sec:      NewSecurityLogger(l),
	}, nil
}

// Policy returns the policy row for resource.
func (e *Engine) Policy(resource Resource) (Policy, error) {
	p, ok := e.policies[resource]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}
	return p, nil
}

// Precheck runs the steps shared by every decision: global override,
// volunteer bypass and the capability gate. done is false when the scope
// check still has to run.
func (e *Engine) Precheck(p Policy, caller model.ClaimSet) (v Verdict, done bool) {
	if caller.Has(model.RoleSuperAdmin) {
		return Allow(), true
	}
	if p.VolunteerBypass && caller.Has(model.RoleVolunteerAdmin) {
		return Allow(), true
	}
	if !p.passesGate(caller) {
		return Deny(p.RoleError), true
	}
	return Verdict{}, false
}

// Decide applies ANY-of-N semantics against a single target.
func (e *Engine) Decide(p Policy, caller model.ClaimSet, t Target) Verdict {
	if v, done := e.Precheck(p, caller); done {
		return v
	}
	return e.scope(p, caller, t)
}

func (e *Engine) scope(p Policy, caller model.ClaimSet, t Target) Verdict {
	if p.StubbedScope {
		// TODO: resource records carry no location field, so the flag cannot scope them yet.
		if !e.opts.EnforceStubbedLocationChecks || (len(t.Locations) == 0 && t.OrgKey == "") {
			return Allow()
		}
	}

	if p.GeneralKey != "" {
		for _, l := range t.Locations {
			if l == p.GeneralKey {
				return Allow()
			}
		}
	}

	if p.OrgScoped && caller.AdministersOrg(t.OrgKey) {
		return Allow()
	}

	if caller.CoversAnyLocation(t.Locations) {
		return Allow()
	}

	return Deny(ReasonInsufficientScope)
}

// DecideLocations applies ALL-of-N semantics to a list filter. The first
// uncovered location is named in the denial.
func (e *Engine) DecideLocations(p Policy, caller model.ClaimSet, requested []string) Verdict {
	if v, done := e.Precheck(p, caller); done {
		return v
	}

	if len(requested) == 0 {
		return Deny(ReasonNoLocations)
	}

	for _, l := range requested {
		if p.GeneralKey != "" && l == p.GeneralKey {
			continue
		}
		if !caller.CoversLocation(l) {
			return deniedLocation(l)
		}
	}

	return Allow()
}

// Record counts the decision and writes denials to the security log.
func (e *Engine) Record(ctx context.Context, sc model.Scope, resource Resource, resourceID string, v Verdict) {
	if v.Allowed {
		metrics.AuthzDecision(string(resource), metrics.OutcomeAllow)
		return
	}
	metrics.AuthzDecision(string(resource), metrics.OutcomeDeny)
	e.sec.LogAuthorizationFailure(ctx, sc.UserID, string(resource), resourceID, v.Reason)
}
