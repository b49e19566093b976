package validation

import (
	"errors"
	"fmt"
	"strings"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/go-playground/validator/v10"
)

// PlaygroundContext queues the failures reported by go-playground/validator.
// It is owned by a single operation and is not safe for concurrent use.
type PlaygroundContext struct {
	validate *validator.Validate
	pending  []Diagnostic
}

// NewPlaygroundContext creates a diagnostic queue around validate.
// A nil validate gets a default validator.
func NewPlaygroundContext(validate *validator.Validate) *PlaygroundContext {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return &PlaygroundContext{validate: validate}
}

// Check validates v and queues one diagnostic per failed rule.
// It reports whether v passed.
func (c *PlaygroundContext) Check(v any) bool {
	err := c.validate.Struct(v)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		c.pending = append(c.pending, Diagnostic{
			Code:    domainerr.CodeInvalArg,
			Message: err.Error(),
		})
		return false
	}

	for _, fe := range fieldErrs {
		c.pending = append(c.pending, Diagnostic{
			Code:    domainerr.CodeValidationFailed,
			Path:    namespacePath(fe.Namespace()),
			Message: fmt.Sprintf("Value \"%v\" does not satisfy the \"%s\" rule.", fe.Value(), ruleName(fe)),
		})
	}
	return false
}

// CheckVar validates a single value against tag and queues failures
// under path. It reports whether the value passed.
func (c *PlaygroundContext) CheckVar(path string, value any, tag string) bool {
	err := c.validate.Var(value, tag)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		c.pending = append(c.pending, Diagnostic{
			Code:    domainerr.CodeInvalArg,
			Path:    path,
			Message: err.Error(),
		})
		return false
	}

	for _, fe := range fieldErrs {
		c.pending = append(c.pending, Diagnostic{
			Code:    domainerr.CodeValidationFailed,
			Path:    path,
			Message: fmt.Sprintf("Value \"%v\" does not satisfy the \"%s\" rule.", fe.Value(), ruleName(fe)),
		})
	}
	return false
}

// Diagnostics returns the pending diagnostics in report order
func (c *PlaygroundContext) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.pending))
	copy(out, c.pending)
	return out
}

// Clear drops every pending diagnostic
func (c *PlaygroundContext) Clear() {
	c.pending = nil
}

// namespacePath turns "Node.Leaf[0].Name" into "/Node/Leaf[0]/Name"
func namespacePath(ns string) string {
	if ns == "" {
		return ""
	}
	return "/" + strings.ReplaceAll(ns, ".", "/")
}

func ruleName(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
