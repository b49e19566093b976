package validation

import (
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/go-playground/validator/v10"
)

// hintRule flags values that are accepted but may not survive every client encoding
const hintRule = "printascii"

// NodeValidator checks nodes with go-playground/validator.
// Rule failures become errors; hint failures are logged as warnings.
type NodeValidator struct {
	validate  *validator.Validate
	logger    core.Logger
	firstOnly bool
}

// NewNodeValidator creates a node validator. With firstOnly only the first
// rule failure of a node is recorded.
func NewNodeValidator(logger core.Logger, firstOnly bool) *NodeValidator {
	return &NodeValidator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
		firstOnly: firstOnly,
	}
}

// Validate records every rule failure of node into info
func (v *NodeValidator) Validate(rep *domainerr.Reporter, info *domainerr.Info, node entity.Node) *domainerr.Info {
	ctx := NewPlaygroundContext(v.validate)

	if !ctx.Check(node) {
		if v.firstOnly {
			return FirstError(rep, info, ctx)
		}
		return Errors(rep, info, ctx)
	}

	ctx.CheckVar(node.Path, node.Value, hintRule)
	Warnings(v.logger, ctx)
	return info
}
