// Package validation turns diagnostics queued by an external validator into
// recorded errors or warnings.
package validation

import (
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
)

// Diagnostic is one complaint reported by an external validator
type Diagnostic struct {
	// Code is an optional specific status; zero means a plain validation failure
	Code    domainerr.Code
	Path    string
	Message string
}

// Context is the diagnostic queue of an external validator.
// Diagnostics are listed in the order the validator reported them.
type Context interface {
	Diagnostics() []Diagnostic
	Clear()
}

func (d Diagnostic) code() domainerr.Code {
	if d.Code == domainerr.CodeOK {
		return domainerr.CodeValidationFailed
	}
	return d.Code
}

// Errors drains every pending diagnostic of ctx into info
func Errors(rep *domainerr.Reporter, info *domainerr.Info, ctx Context) *domainerr.Info {
	diags := ctx.Diagnostics()
	if len(diags) == 0 {
		return info
	}

	for _, d := range diags {
		info = rep.New(info, d.code(), d.Path, "%s", d.Message)
	}
	ctx.Clear()
	return info
}

// FirstError records only the first pending diagnostic and discards the rest
func FirstError(rep *domainerr.Reporter, info *domainerr.Info, ctx Context) *domainerr.Info {
	diags := ctx.Diagnostics()
	if len(diags) == 0 {
		return info
	}

	d := diags[0]
	info = rep.New(info, d.code(), d.Path, "%s", d.Message)
	ctx.Clear()
	return info
}

// Warnings drains every pending diagnostic of ctx into warning log messages
func Warnings(logger core.Logger, ctx Context) {
	diags := ctx.Diagnostics()
	if len(diags) == 0 {
		return
	}

	for _, d := range diags {
		logger.LogMsg(core.SeverityWarning, d.Message, d.Path)
	}
	ctx.Clear()
}
