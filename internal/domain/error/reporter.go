package error

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
)

// Reporter records errors into an Info and logs each one at error severity
// as it is recorded.
type Reporter struct {
	logger core.Logger
}

// NewReporter creates a reporter that logs through the given logger
func NewReporter(logger core.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// New renders the message, appends a record to info and logs it. info may be
// nil; the (possibly newly allocated) list is returned, like append.
// An empty format renders the code's description. CodeOK is not a failure
// and is recorded as CodeInternal.
func (r *Reporter) New(info *Info, code Code, path, format string, args ...any) *Info {
	if code == CodeOK {
		code = CodeInternal
	}
	msg := code.String()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}

	info = info.append(&Record{code: code, path: path, message: msg})
	if r.logger != nil {
		r.logger.LogMsg(core.SeverityError, msg, path)
	}
	return info
}

// Internal records an internal error tagged with the caller's file and line
func (r *Reporter) Internal(info *Info) *Info {
	file, line := "unknown", 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file, line = filepath.Base(f), l
	}
	return r.New(info, CodeInternal, "", "Internal error (%s:%d).", file, line)
}

// NoMem records an allocation failure
func (r *Reporter) NoMem(info *Info) *Info {
	return r.New(info, CodeNoMem, "", "")
}

// Lock records a failed lock acquisition; a timeout yields CodeTimeOut
func (r *Reporter) Lock(info *Info, fn string, err error) *Info {
	return r.New(info, waitCode(err), "", "Locking a mutex failed (%s: %s).", fn, errText(err))
}

// Cond records a failed wait on a condition; a timeout yields CodeTimeOut
func (r *Reporter) Cond(info *Info, fn string, err error) *Info {
	return r.New(info, waitCode(err), "", "Waiting on a conditional variable failed (%s: %s).", fn, errText(err))
}

// Sys records a failed system call
func (r *Reporter) Sys(info *Info, fn string, err error) *Info {
	return r.New(info, CodeSys, "", "%s() failed (%s).", fn, errText(err))
}

// Valid records a generic validation failure
func (r *Reporter) Valid(info *Info) *Info {
	return r.New(info, CodeValidationFailed, "", "Validation failed.")
}

// InvalArg records invalid arguments passed to the calling function
func (r *Reporter) InvalArg(info *Info) *Info {
	return r.InvalArgFor(info, FuncName(1))
}

// InvalArgFor records invalid arguments passed to the named function
func (r *Reporter) InvalArgFor(info *Info, fn string) *Info {
	return r.New(info, CodeInvalArg, "", "Invalid arguments for function \"%s\".", fn)
}

func waitCode(err error) Code {
	if IsTimeout(err) {
		return CodeTimeOut
	}
	return CodeInternal
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// FuncName returns the short name of a function on the call stack;
// skip 0 is the caller of FuncName.
func FuncName(skip int) string {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs[:n]).Next()
	name := frame.Function
	if name == "" {
		return "unknown"
	}
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
