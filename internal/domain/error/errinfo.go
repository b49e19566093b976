package error

import (
	"go.uber.org/multierr"
)

// Record is a single recorded error. Its fields are fixed at creation.
type Record struct {
	code    Code
	path    string
	message string
}

// Code returns the status code of the record
func (r *Record) Code() Code {
	return r.code
}

// Path returns the optional path of the concerned node, empty when absent
func (r *Record) Path() string {
	return r.path
}

// Message returns the rendered message
func (r *Record) Message() string {
	return r.message
}

// Error implements the error interface for Record
func (r *Record) Error() string {
	if r.path == "" {
		return r.message
	}
	return r.message + " (" + r.path + ")"
}

// LogFields returns a map of fields for structured logging
func (r *Record) LogFields() map[string]any {
	fields := map[string]any{
		"error_code": int(r.code),
		"error":      r.message,
	}
	if r.path != "" {
		fields["path"] = r.path
	}
	return fields
}

// Info is the ordered list of errors raised during one logical operation.
// The first record is the primary error. An Info is owned by one caller
// at a time and is not safe for concurrent mutation.
//
// A nil *Info is a valid empty list.
type Info struct {
	records []*Record
}

func (i *Info) append(rec *Record) *Info {
	if i == nil {
		i = &Info{}
	}
	i.records = append(i.records, rec)
	return i
}

// Len returns the number of records
func (i *Info) Len() int {
	if i == nil {
		return 0
	}
	return len(i.records)
}

// Empty reports whether the list holds no records
func (i *Info) Empty() bool {
	return i.Len() == 0
}

// First returns the primary record
func (i *Info) First() (*Record, bool) {
	if i.Empty() {
		return nil, false
	}
	return i.records[0], true
}

// Code returns the code of the primary record, or CodeOK for an empty list
func (i *Info) Code() Code {
	if first, ok := i.First(); ok {
		return first.code
	}
	return CodeOK
}

// Records returns the records in the order they were raised.
// The returned slice is a copy; the records themselves are shared.
func (i *Info) Records() []*Record {
	if i.Empty() {
		return nil
	}
	out := make([]*Record, len(i.records))
	copy(out, i.records)
	return out
}

// Err combines all records into one error, nil when the list is empty
func (i *Info) Err() error {
	var err error
	for _, rec := range i.Records() {
		err = multierr.Append(err, rec)
	}
	return err
}

// Free releases every record. Safe on a nil or already freed list.
func (i *Info) Free() {
	if i == nil {
		return
	}
	i.records = nil
}

// Merge moves every record of src, in order, to the end of dst and leaves
// src empty. dst may be nil, in which case src's records are adopted into
// a new list. Merging a list into itself changes nothing.
func Merge(dst, src *Info) *Info {
	if src.Empty() {
		return dst
	}
	if dst == src {
		return dst
	}
	if dst == nil {
		dst = &Info{}
	}
	dst.records = append(dst.records, src.records...)
	src.records = nil
	return dst
}
