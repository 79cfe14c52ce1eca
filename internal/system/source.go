// Package system reads kernel counter sources such as /proc/stat.
package system

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"linux-monitor/internal/domain"
)

// Source yields one whitespace-split record per line. It stops at EOF or at
// the first blank line and cannot be rewound; open a new Source every tick.
type Source struct {
	file    *os.File
	scanner *bufio.Scanner
	done    bool
}

func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Source{file: f, scanner: scanner}, nil
}

func (s *Source) Next() ([]string, bool) {
	if s.done {
		return nil, false
	}

	if !s.scanner.Scan() {
		s.done = true
		return nil, false
	}

	fields := strings.Fields(s.scanner.Text())
	if len(fields) == 0 {
		s.done = true
		return nil, false
	}

	return fields, true
}

// Err reports a read failure that ended the sequence early.
func (s *Source) Err() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return nil
}

func (s *Source) Close() error {
	return s.file.Close()
}

// ReadRecords drains a freshly opened source.
func ReadRecords(path string) ([][]string, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var records [][]string
	for {
		fields, ok := src.Next()
		if !ok {
			break
		}
		records = append(records, fields)
	}

	if err := src.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Path joins a proc-relative name onto root, e.g. Path("/proc", "net/dev").
func Path(root, name string) string {
	if root == "" {
		root = "/proc"
	}
	return filepath.Join(root, name)
}
