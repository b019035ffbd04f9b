package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// Client resolves natively over UDP using miekg/dns. Answers are formatted
// per record type so that they line up with dig +short output, which keeps
// the two resolver implementations interchangeable for comparison purposes.
type Client struct {
	client *dns.Client
	logger *slog.Logger
}

// NewClient returns a native resolver. A zero timeout uses the miekg/dns
// default (2s).
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	c := new(dns.Client)
	if timeout > 0 {
		c.Timeout = timeout
	}
	return &Client{client: c, logger: logger}
}

var questionTypes = map[RecordType]uint16{
	TypeA:     dns.TypeA,
	TypeMX:    dns.TypeMX,
	TypeCNAME: dns.TypeCNAME,
	TypeTXT:   dns.TypeTXT,
	TypeNS:    dns.TypeNS,
}

// Resolve performs a single exchange with the given nameserver. Exchange
// failures fold into an empty answer set; only malformed invocations error.
func (c *Client) Resolve(ctx context.Context, server, name string, rtype RecordType) ([]string, error) {
	if err := validateQuery(server, name, rtype); err != nil {
		return nil, err
	}
	qtype, ok := questionTypes[rtype]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, rtype)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)

	in, _, err := c.client.ExchangeContext(ctx, m, withDefaultPort(server))
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("dns query failed",
				"server", server,
				"name", name,
				"type", string(rtype),
				"error", err,
			)
		}
		return nil, nil
	}

	answers := make([]string, 0, len(in.Answer))
	for _, rr := range in.Answer {
		answers = append(answers, formatAnswer(rr))
	}
	return answers, nil
}

// withDefaultPort appends :53 when the server has no explicit port.
func withDefaultPort(server string) string {
	if strings.Contains(server, ":") {
		return server
	}
	return server + ":53"
}

// formatAnswer renders one resource record the way dig +short would.
func formatAnswer(rr dns.RR) string {
	switch r := rr.(type) {
	case *dns.A:
		return r.A.String()
	case *dns.AAAA:
		return r.AAAA.String()
	case *dns.MX:
		return fmt.Sprintf("%d %s", r.Preference, r.Mx)
	case *dns.CNAME:
		return r.Target
	case *dns.NS:
		return r.Ns
	case *dns.TXT:
		quoted := make([]string, len(r.Txt))
		for i, s := range r.Txt {
			quoted[i] = strconv.Quote(s)
		}
		return strings.Join(quoted, " ")
	default:
		// Fall back to the rdata portion of the presentation format.
		return strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))
	}
}
