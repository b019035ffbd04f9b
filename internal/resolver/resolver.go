// Package resolver issues individual DNS queries against a single nameserver.
//
// Two implementations of the Resolver capability are provided:
//
//   - Dig shells out to the system dig binary in +short mode. This is the
//     default mechanism.
//   - Client resolves natively over UDP using miekg/dns and formats answers
//     to match dig +short output.
//
// Both treat "no answer" and "server unreachable" identically: the query
// yields an empty answer set. Errors are reserved for malformed invocations
// (empty server, name or record type).
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// RecordType is a DNS record type understood by the comparison tool.
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeMX    RecordType = "MX"
	TypeCNAME RecordType = "CNAME"
	TypeTXT   RecordType = "TXT"
	TypeNS    RecordType = "NS"
)

// DefaultRecordTypes returns the record set checked when none is configured.
func DefaultRecordTypes() []RecordType {
	return []RecordType{TypeA, TypeMX, TypeCNAME, TypeTXT, TypeNS}
}

// ErrUnknownRecordType is returned for record types outside the supported set.
var ErrUnknownRecordType = errors.New("unknown record type")

// ParseRecordType normalizes and validates a record type string.
func ParseRecordType(s string) (RecordType, error) {
	switch t := RecordType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeA, TypeMX, TypeCNAME, TypeTXT, TypeNS:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
}

// Validation errors for malformed queries. A query with any of these is a
// caller bug and is rejected before anything is executed.
var (
	ErrMissingServer = errors.New("server must not be empty")
	ErrMissingName   = errors.New("name must not be empty")
	ErrMissingType   = errors.New("record type must not be empty")
)

// Resolver issues one DNS query against one nameserver.
//
// The returned slice is the ordered answer set for the query; order is
// whatever the nameserver returned. A nil or empty slice means no records.
// Implementations fold ordinary resolution failures (timeouts, SERVFAIL,
// unreachable server) into the empty set instead of returning an error, so
// a single dead query never aborts a whole comparison run.
type Resolver interface {
	Resolve(ctx context.Context, server, name string, rtype RecordType) ([]string, error)
}

func validateQuery(server, name string, rtype RecordType) error {
	if strings.TrimSpace(server) == "" {
		return ErrMissingServer
	}
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	if rtype == "" {
		return ErrMissingType
	}
	return nil
}
