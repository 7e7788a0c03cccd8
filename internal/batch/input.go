package batch

import (
	"bufio"
	"io"
	"strings"
)

// ReadLines reads one IBAN per line. Blank lines and lines starting with
// '#' are skipped; surrounding whitespace is trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
