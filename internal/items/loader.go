package items

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineLength = 1024 * 1024

// LoadLines reads one item per line, skipping blank lines and # comments
func LoadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lines := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// the strip is a single row
		line = strings.Join(strings.Fields(line), " ")
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return lines, nil
}

// LoadFile reads items from path
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()

	return LoadLines(f)
}
