package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAnswers(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"empty output", "", nil},
		{"whitespace only", "\n  \n", nil},
		{"single answer", "1.2.3.4\n", []string{"1.2.3.4"}},
		{"multiple answers", "1.2.3.4\n5.6.7.8\n", []string{"1.2.3.4", "5.6.7.8"}},
		{"crlf line endings", "1.2.3.4\r\n5.6.7.8\r\n", []string{"1.2.3.4", "5.6.7.8"}},
		{"mx answers keep priority", "10 mail.example.com.\n20 backup.example.com.\n",
			[]string{"10 mail.example.com.", "20 backup.example.com."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAnswers(tt.out))
		})
	}
}

func TestDigResolveValidation(t *testing.T) {
	d := NewDig(nil)

	_, err := d.Resolve(context.Background(), "", "example.com", TypeA)
	assert.ErrorIs(t, err, ErrMissingServer)

	_, err = d.Resolve(context.Background(), "1.1.1.1", "", TypeA)
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = d.Resolve(context.Background(), "1.1.1.1", "example.com", "")
	assert.ErrorIs(t, err, ErrMissingType)
}

// A missing binary is a resolution failure, not an error: the adapter
// reports "no records" and the run keeps going.
func TestDigResolveMissingBinary(t *testing.T) {
	d := &Dig{Binary: "/nonexistent/dig-binary"}

	answers, err := d.Resolve(context.Background(), "1.1.1.1", "example.com", TypeA)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

// Substituting echo for dig exercises the success path without any
// network dependency: echo prints its arguments, which come back as the
// single answer line.
func TestDigResolveCapturesOutput(t *testing.T) {
	d := &Dig{Binary: "echo"}

	answers, err := d.Resolve(context.Background(), "1.1.1.1", "example.com", TypeA)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "@1.1.1.1 example.com A +short", answers[0])
}
