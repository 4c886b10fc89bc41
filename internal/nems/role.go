package nems

import (
	"fmt"
	"strings"
)

// Role identifies a component slot in the coupled system. The string value
// is the block prefix used in emitted configuration files.
type Role string

const (
	RoleATM Role = "ATM"
	RoleOCN Role = "OCN"
	RoleWAV Role = "WAV"
	RoleMED Role = "MED"
	RoleICE Role = "ICE"
	RoleLND Role = "LND"
	RoleHYD Role = "HYD"
)

var roles = []Role{RoleATM, RoleOCN, RoleWAV, RoleMED, RoleICE, RoleLND, RoleHYD}

func ParseRole(s string) (Role, error) {
	upper := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range roles {
		if upper == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalid, s)
}

func (r Role) String() string { return string(r) }

// Lower is the spelling used in mediator phase names (med_phases_post_atm).
func (r Role) Lower() string { return strings.ToLower(string(r)) }
