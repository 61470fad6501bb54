package survey

import "regexp"

// emailPattern deliberately anchors only the start: a value is valid when
// its prefix looks like local@domain.tld. Matches the original study's
// validation rule, so trailing junk after the TLD is still accepted.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// validEmail reports whether the raw cell holds a string passing the
// email shape check. Non-string values are never valid.
func validEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return emailPattern.MatchString(s)
}

// FilterValidEmails returns a new table holding only the rows whose email
// field is a valid-looking string, reindexed contiguously from 0. The
// analysis table itself is left untouched; this is the only operation that
// can change the row count, and only in its returned copy.
func (a *Analysis) FilterValidEmails() (*Table, error) {
	if a.tab == nil {
		return nil, ErrNotLoaded
	}
	out := &Table{}
	for _, r := range a.tab.Records {
		if validEmail(r.Email) {
			out.Records = append(out.Records, r)
		}
	}
	a.log.Debug().
		Int("kept", out.Len()).
		Int("dropped", a.tab.Len()-out.Len()).
		Msg("filtered invalid emails")
	return out, nil
}
