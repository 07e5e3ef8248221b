package playlist

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// openDecoded opens a text file and decodes it to UTF-8.
// Rekordbox writes UTF-16 with a byte order mark, Serato plain UTF-8.
func openDecoded(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return struct {
		io.Reader
		io.Closer
	}{transform.NewReader(file, decoder), file}, nil
}

// readLines returns the decoded lines of a text file without line endings
func readLines(path string) ([]string, error) {
	rc, err := openDecoded(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: '%s': %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: '%s': %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, nil
}

// table is a header row plus data rows of equal meaning
type table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

func newTable(header []string, rows [][]string) table {
	t := table{header: make([]string, len(header)), index: make(map[string]int, len(header)), rows: rows}
	for i, name := range header {
		name = strings.TrimSpace(name)
		t.header[i] = name
		if _, exists := t.index[name]; !exists && name != "" {
			t.index[name] = i
		}
	}
	return t
}

func (t table) has(field string) bool {
	_, ok := t.index[field]
	return ok
}

// requireFields returns an error naming the first missing field
func (t table) requireFields(kind string, fields ...string) error {
	for _, field := range fields {
		if !t.has(field) {
			return fmt.Errorf("%s missing required field: '%s'", kind, field)
		}
	}
	return nil
}

// records maps each row to header name -> trimmed value.
// Rows shorter than the header get empty values.
func (t table) records() []map[string]string {
	records := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlankRow(row) {
			continue
		}
		record := make(map[string]string, len(t.index))
		for name, i := range t.index {
			if i < len(row) {
				record[name] = strings.TrimSpace(row[i])
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

var columnSeparator = regexp.MustCompile(`\t|\s{2,}`)

// splitFixedWidth parses a text table where columns start where their name
// starts in the header line. Lines made only of dashes are dividers.
func splitFixedWidth(lines []string) table {
	var headerLine []rune
	var body []string
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		headerLine = []rune(strings.TrimRight(line, " \t"))
		body = lines[i+1:]
		break
	}
	if headerLine == nil {
		return newTable(nil, nil)
	}

	var names []string
	for _, name := range columnSeparator.Split(strings.TrimSpace(string(headerLine)), -1) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	starts := make([]int, 0, len(names))
	columns := make([]string, 0, len(names))
	cursor := 0
	for _, name := range names {
		at := indexRunes(headerLine, []rune(name), cursor)
		if at < 0 {
			continue
		}
		starts = append(starts, at)
		columns = append(columns, name)
		cursor = at + len([]rune(name))
	}

	var rows [][]string
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Trim(trimmed, "-") == "" {
			continue
		}
		runes := []rune(strings.TrimRight(line, " \t"))
		row := make([]string, len(starts))
		for i, start := range starts {
			end := len(runes)
			if i+1 < len(starts) && starts[i+1] < end {
				end = starts[i+1]
			}
			if start >= end {
				continue
			}
			row[i] = strings.TrimSpace(string(runes[start:end]))
		}
		rows = append(rows, row)
	}
	return newTable(columns, rows)
}

func indexRunes(haystack, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
