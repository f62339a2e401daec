// Package schema defines the resolved operation schema consumed by the
// message builder. Schemas are produced externally (typically from WSDL)
// and are never mutated by this library.
package schema

import (
	"fmt"
)

// Style is the WSDL binding style
type Style string

const (
	// StyleRPC names the body element after the operation
	StyleRPC Style = "rpc"
	// StyleDocument names the body elements after the message parts
	StyleDocument Style = "document"
)

// Use is the WSDL encoding use
type Use string

const (
	// UseEncoded annotates elements with SOAP encoding types
	UseEncoded Use = "encoded"
	// UseLiteral emits elements without type annotations
	UseLiteral Use = "literal"
)

// Version represents the SOAP protocol version
type Version string

const (
	// SOAP11 represents SOAP 1.1 protocol
	SOAP11 Version = "1.1"
	// SOAP12 represents SOAP 1.2 protocol
	SOAP12 Version = "1.2"
)

// Operation is a fully resolved operation schema: everything the builder
// needs to serialize one call. Supplied per call, treated as immutable.
type Operation struct {
	// Name is the operation (wrapper) element name
	Name string
	// Namespace is the target namespace of the operation element
	Namespace string
	// SOAPAction is the action URI; carried as a transport header for
	// SOAP 1.1 and inside the Content-Type for SOAP 1.2
	SOAPAction string

	Style   Style
	Use     Use
	Version Version
}

// Error reports a missing or contradictory schema field. Schema errors
// indicate a caller bug and are never retried.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid operation schema: %s: %s", e.Field, e.Reason)
}

// Validate checks that the operation carries every field the builder
// depends on. Unknown style/use/version values are errors rather than
// silent defaults, to avoid producing wire-incompatible messages.
func (op *Operation) Validate() error {
	if op == nil {
		return &Error{Field: "operation", Reason: "is nil"}
	}
	if op.Name == "" {
		return &Error{Field: "name", Reason: "is required"}
	}
	if op.Namespace == "" {
		return &Error{Field: "namespace", Reason: "is required"}
	}
	switch op.Style {
	case StyleRPC, StyleDocument:
	default:
		return &Error{Field: "style", Reason: fmt.Sprintf("unknown value %q", string(op.Style))}
	}
	switch op.Use {
	case UseEncoded, UseLiteral:
	default:
		return &Error{Field: "use", Reason: fmt.Sprintf("unknown value %q", string(op.Use))}
	}
	switch op.Version {
	case SOAP11, SOAP12:
	default:
		return &Error{Field: "version", Reason: fmt.Sprintf("unknown value %q", string(op.Version))}
	}
	return nil
}
