package guest

import (
	"strings"
)

// ParseResult holds the candidate guests read from an import file
type ParseResult struct {
	Guests []*Guest
	// Skipped counts non-blank data rows that were dropped as invalid
	Skipped int
}

type csvColumns struct {
	name, side, tags, status int
}

// ParseCSV turns delimited text with a header row into candidate guests.
// The separator is ';' when the header contains one and ',' otherwise.
// Rows with a missing name or an unknown side are dropped, not reported.
// Nothing is persisted here.
func ParseCSV(content string) (*ParseResult, error) {
	lines := strings.Split(content, "\n")

	header := lines[0]
	sep := ','
	if strings.ContainsRune(header, ';') {
		sep = ';'
	}

	cols := csvColumns{name: -1, side: -1, tags: -1, status: -1}
	for i, h := range strings.Split(header, string(sep)) {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			cols.name = i
		case "side":
			cols.side = i
		case "tags":
			cols.tags = i
		case "rsvp_status":
			cols.status = i
		}
	}
	if cols.name < 0 || cols.side < 0 {
		return nil, invalid("file must contain name and side columns")
	}

	result := &ParseResult{}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, ok := parseRow(splitQuoted(line, sep), cols)
		if !ok {
			result.Skipped++
			continue
		}
		result.Guests = append(result.Guests, g)
	}

	if len(result.Guests) == 0 {
		return nil, invalid("no valid guests found")
	}
	return result, nil
}

func parseRow(fields []string, cols csvColumns) (*Guest, bool) {
	name := field(fields, cols.name)
	side := strings.ToLower(field(fields, cols.side))
	if name == "" || side == "" || !IsValidSide(side) {
		return nil, false
	}

	tags := []string{}
	if raw := field(fields, cols.tags); raw != "" {
		if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
			raw = raw[1 : len(raw)-1]
		}
		tags = NormalizeTags(strings.Split(raw, ","))
	}

	status := StatusPending
	if s := strings.ToLower(field(fields, cols.status)); IsValidStatus(s) {
		status = RSVPStatus(s)
	}

	return &Guest{
		Name:           name,
		Side:           Side(side),
		Tags:           tags,
		RSVPStatus:     status,
		UniqueInviteID: NewInviteID(),
	}, true
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// splitQuoted splits line on sep, except inside double quotes.
// A quote preceded by a backslash is a literal quote.
func splitQuoted(line string, sep rune) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
		escaped  bool
	)
	for _, r := range line {
		switch {
		case escaped:
			if r != '"' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == sep && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
