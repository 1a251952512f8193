package catalog

import (
	"bufio"
	"html"
	"io"
	"strings"
)

// Row maps a header cell to the data cell beneath it.
type Row map[string]string

// ParseTables scans a markdown document for pipe tables and returns them
// grouped by their enclosing "## " section heading.
//
// A table starts at a line beginning with "|" whose next line contains a
// "---" divider; without the divider the candidate header is ignored. Data
// rows whose cell count differs from the header are skipped. Several tables
// under one heading concatenate into a single row list. Cell text is
// normalized: "<br>" markup becomes a newline, HTML entities are decoded and
// surrounding whitespace is trimmed.
func ParseTables(r io.Reader) (map[string][]Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tables := make(map[string][]Row)
	section := ""

	i := 0
	for i < len(lines) {
		line := lines[i]

		if strings.HasPrefix(line, "## ") {
			section = strings.TrimSpace(line[3:])
			i++
			continue
		}

		if strings.HasPrefix(line, "|") && section != "" {
			if i+1 >= len(lines) {
				break
			}
			if !strings.Contains(lines[i+1], "---") {
				i++
				continue
			}

			headers := splitCells(line)
			var rows []Row
			i += 2
			for i < len(lines) {
				rowLine := lines[i]
				if !strings.HasPrefix(rowLine, "|") {
					break
				}
				cells := splitCells(rowLine)
				if len(cells) != len(headers) {
					i++
					continue
				}
				row := make(Row, len(headers))
				for j, header := range headers {
					row[header] = normalizeCell(cells[j])
				}
				rows = append(rows, row)
				i++
			}
			tables[section] = append(tables[section], rows...)
			continue
		}

		i++
	}

	return tables, nil
}

// splitCells strips the leading and trailing pipes of a table line and
// returns the trimmed cells between the remaining pipes.
func splitCells(line string) []string {
	trimmed := strings.Trim(strings.TrimSpace(line), "|")
	cells := strings.Split(trimmed, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func normalizeCell(value string) string {
	value = strings.ReplaceAll(value, "<br />", "\n")
	value = strings.ReplaceAll(value, "<br>", "\n")
	value = html.UnescapeString(value)
	return strings.TrimSpace(value)
}
