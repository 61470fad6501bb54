package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		name  string
		email any
		want  bool
	}{
		{"simple", "a@b.c", true},
		{"typical", "subject.01@lab.example.org", true},
		{"no at sign", "notanemail", false},
		{"double at", "a@@b.com", false},
		{"no dot after at", "a@bcom", false},
		{"empty local part", "@b.com", false},
		{"empty domain", "a@.", false},
		{"empty string", "", false},
		{"non-string", 42.0, false},
		{"nil", nil, false},
		// Prefix match: junk after a valid shape still passes.
		{"trailing junk", "a@b.c@@", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validEmail(tc.email))
		})
	}
}

func TestFilterValidEmails(t *testing.T) {
	a := loadFixture(t, []map[string]any{
		fullRow(map[string]any{"email": "first@example.com", "gender": "F"}),
		fullRow(map[string]any{"email": "notanemail"}),
		fullRow(map[string]any{"email": "second@example.org", "gender": "M"}),
		fullRow(map[string]any{"email": nil}),
		fullRow(map[string]any{"email": 123}),
	})

	got, err := a.FilterValidEmails()
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "first@example.com", got.Records[0].Email)
	assert.Equal(t, "second@example.org", got.Records[1].Email)

	// The analysis table is untouched: filtering twice gives the same
	// result both times and the stored row count never moves.
	assert.Equal(t, 5, a.Table().Len())
	again, err := a.FilterValidEmails()
	require.NoError(t, err)
	assert.Equal(t, got.Len(), again.Len())
}
