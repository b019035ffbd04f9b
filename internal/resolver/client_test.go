package resolver

import (
	"context"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultPort(t *testing.T) {
	assert.Equal(t, "1.1.1.1:53", withDefaultPort("1.1.1.1"))
	assert.Equal(t, "1.1.1.1:5353", withDefaultPort("1.1.1.1:5353"))
}

func TestFormatAnswer(t *testing.T) {
	hdr := func(rtype uint16) dns.RR_Header {
		return dns.RR_Header{Name: "example.com.", Rrtype: rtype, Class: dns.ClassINET, Ttl: 300}
	}

	tests := []struct {
		name string
		rr   dns.RR
		want string
	}{
		{
			"a record",
			&dns.A{Hdr: hdr(dns.TypeA), A: net.ParseIP("1.2.3.4")},
			"1.2.3.4",
		},
		{
			"aaaa record",
			&dns.AAAA{Hdr: hdr(dns.TypeAAAA), AAAA: net.ParseIP("2001:db8::1")},
			"2001:db8::1",
		},
		{
			"mx keeps preference",
			&dns.MX{Hdr: hdr(dns.TypeMX), Preference: 10, Mx: "mail.example.com."},
			"10 mail.example.com.",
		},
		{
			"cname target",
			&dns.CNAME{Hdr: hdr(dns.TypeCNAME), Target: "canonical.example.com."},
			"canonical.example.com.",
		},
		{
			"ns host",
			&dns.NS{Hdr: hdr(dns.TypeNS), Ns: "ns1.example.com."},
			"ns1.example.com.",
		},
		{
			"txt quoted like dig",
			&dns.TXT{Hdr: hdr(dns.TypeTXT), Txt: []string{"v=spf1 -all"}},
			`"v=spf1 -all"`,
		},
		{
			"multi-string txt",
			&dns.TXT{Hdr: hdr(dns.TypeTXT), Txt: []string{"part-one", "part-two"}},
			`"part-one" "part-two"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAnswer(tt.rr))
		})
	}
}

func TestClientResolveValidation(t *testing.T) {
	c := NewClient(0, nil)

	_, err := c.Resolve(context.Background(), "", "example.com", TypeA)
	assert.ErrorIs(t, err, ErrMissingServer)

	_, err = c.Resolve(context.Background(), "1.1.1.1", "example.com", "")
	assert.ErrorIs(t, err, ErrMissingType)
}

// An unreachable server is an ordinary resolution failure and must fold
// into an empty answer set. 127.0.0.1:1 refuses immediately, so this does
// not depend on external networking.
func TestClientResolveUnreachableServer(t *testing.T) {
	c := NewClient(0, nil)

	answers, err := c.Resolve(context.Background(), "127.0.0.1:1", "example.com", TypeA)
	require.NoError(t, err)
	assert.Empty(t, answers)
}
