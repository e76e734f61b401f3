package parse_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomkey/internal/domain"
	"roomkey/internal/parse"
)

func TestRecord_OK(t *testing.T) {
	rec, err := parse.Record("  aaaaa-bbb-z-y-x-123[abxyz]\n")
	require.NoError(t, err)

	want := domain.Record{
		Tokens:   []string{"aaaaa", "bbb", "z", "y", "x"},
		Sector:   123,
		Checksum: "abxyz",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "aaaaa-bbb-z-y-x-123[abxyz]", rec.String())
}

func TestRecord_NoAlphabeticValidation(t *testing.T) {
	rec, err := parse.Record("ab1-c_d-7[abcde]")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab1", "c_d"}, rec.Tokens)
	assert.Equal(t, 7, rec.Sector)
}

func TestRecord_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"single segment", "abcde[abcde]", domain.ErrMalformedIdentifier},
		{"empty line", "", domain.ErrMalformedIdentifier},
		{"no checksum", "aaa-bbb-123", domain.ErrMalformedIdentifier},
		{"two brackets", "aaa-123[ab[cde]", domain.ErrMalformedIdentifier},
		{"unterminated checksum", "aaa-123[abcde", domain.ErrMalformedIdentifier},
		{"letters in sector", "aaa-12x[abcde]", domain.ErrMalformedSector},
		{"letters in sector with short checksum", "aaa-12x[abc]", domain.ErrMalformedSector},
		{"empty sector", "aaa-[abcde]", domain.ErrMalformedSector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse.Record(tt.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			var pe *domain.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 0, pe.Line)
		})
	}
}

func TestRecord_AcceptsAnyChecksumLength(t *testing.T) {
	for _, line := range []string{"aaa-bbb-5[ab]", "aaa-bbb-5[]", "aaa-bbb-5[abcdefg]"} {
		t.Run(line, func(t *testing.T) {
			rec, err := parse.Record(line)
			require.NoError(t, err)
			assert.Equal(t, 5, rec.Sector)
		})
	}
}

func TestLines_FailFastWithLineNumber(t *testing.T) {
	lines := []string{
		"aaaaa-bbb-z-y-x-123[abxyz]",
		"aaa-bbb-5[ab]",
		"not-a-real-room-404[oarel]",
		"broken-room-x1[abcde]",
		"also-broken",
	}
	recs, err := parse.Lines(lines)
	assert.Nil(t, recs)

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, domain.MalformedSector, pe.Kind)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLines_ShortChecksumDoesNotAbort(t *testing.T) {
	recs, err := parse.Lines([]string{"not-a-real-room-404[oarel]", "aaa-bbb-5[ab]"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.Checksum("ab"), recs[1].Checksum)
}

func TestLines_TrailingNewline(t *testing.T) {
	blob := []byte("aaaaa-bbb-z-y-x-123[abxyz]\r\n  not-a-real-room-404[oarel]  \r\n")
	recs, err := parse.Lines(parse.SplitLines(blob))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 123, recs[0].Sector)
	assert.Equal(t, 404, recs[1].Sector)

	recs, err = parse.Lines(parse.SplitLines(nil))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLines_InteriorBlankLineIsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
	}{
		{"between records", []string{"not-a-real-room-404[oarel]", "", "totally-real-room-200[decoy]"}, 2},
		{"whitespace only", []string{"not-a-real-room-404[oarel]", "   ", "totally-real-room-200[decoy]"}, 2},
		{"double trailing newline", parse.SplitLines([]byte("not-a-real-room-404[oarel]\n\n")), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parse.Lines(tt.lines)
			assert.Nil(t, recs)
			require.True(t, errors.Is(err, domain.ErrMalformedIdentifier))

			var pe *domain.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}
