package validation

import (
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
)

// NodeValidator checks nodes before they are accepted into a datastore
type NodeValidator interface {
	// Validate records every problem found with node into info and returns
	// the resulting list. Problems that should not fail the operation are
	// only logged.
	Validate(rep *domainerr.Reporter, info *domainerr.Info, node entity.Node) *domainerr.Info
}
