package parse

import (
	"errors"
	"strconv"
	"strings"

	"roomkey/internal/domain"
)

// Record parses a single identifier line. Surrounding whitespace is ignored.
func Record(line string) (domain.Record, error) {
	line = strings.TrimSpace(line)

	parts := strings.Split(line, "-")
	if len(parts) < 2 {
		return domain.Record{}, malformed(line, domain.MalformedIdentifier, "expected name tokens and sector")
	}
	tokens := parts[:len(parts)-1]

	ident := strings.Split(parts[len(parts)-1], "[")
	if len(ident) != 2 {
		return domain.Record{}, malformed(line, domain.MalformedIdentifier, "expected sector and checksum")
	}
	sum, ok := strings.CutSuffix(ident[1], "]")
	if !ok {
		return domain.Record{}, malformed(line, domain.MalformedIdentifier, "unterminated checksum")
	}

	sector, err := strconv.Atoi(ident[0])
	if err != nil || sector < 0 {
		return domain.Record{}, malformed(line, domain.MalformedSector, strconv.Quote(ident[0]))
	}

	return domain.Record{
		Tokens:   append([]string(nil), tokens...),
		Sector:   sector,
		Checksum: domain.Checksum(sum),
	}, nil
}

// Lines parses every line and stops at the first failure, whose ParseError
// carries the 1-based line number. A blank last line, left behind by a
// trailing newline, is ignored; blank lines anywhere else are malformed.
func Lines(lines []string) ([]domain.Record, error) {
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}
	out := make([]domain.Record, 0, len(lines))
	for i, line := range lines {
		rec, err := Record(line)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// SplitLines splits an input blob on newlines, tolerating CRLF endings.
func SplitLines(blob []byte) []string {
	s := strings.ReplaceAll(string(blob), "\r\n", "\n")
	return strings.Split(s, "\n")
}

func malformed(line string, kind domain.ParseErrorKind, reason string) error {
	return &domain.ParseError{Input: line, Kind: kind, Reason: reason}
}
