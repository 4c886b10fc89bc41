package sequence

import "github.com/san-kum/nemsgen/internal/nems"

// DefaultRemapMethod is the field-regridding strategy used when a
// connection does not name one.
const DefaultRemapMethod = "redist"

// Connection is a directed field exchange between two registered roles,
// tagged with the remap method the driver should apply in transit.
type Connection struct {
	Source nems.Role
	Target nems.Role
	Method string
}

func NewConnection(source, target nems.Role, method string) Connection {
	if method == "" {
		method = DefaultRemapMethod
	}
	return Connection{Source: source, Target: target, Method: method}
}

// Connections preserves registration order; coupling graphs are
// legitimately cyclic so no cycle detection is performed.
type Connections []Connection

// Into returns the connections feeding role, in registration order.
func (cs Connections) Into(role nems.Role) Connections {
	var out Connections
	for _, c := range cs {
		if c.Target == role {
			out = append(out, c)
		}
	}
	return out
}

// From returns the connections role feeds, in registration order.
func (cs Connections) From(role nems.Role) Connections {
	var out Connections
	for _, c := range cs {
		if c.Source == role {
			out = append(out, c)
		}
	}
	return out
}

// Touching reports whether role is an endpoint of any connection.
func (cs Connections) Touching(role nems.Role) bool {
	for _, c := range cs {
		if c.Source == role || c.Target == role {
			return true
		}
	}
	return false
}
