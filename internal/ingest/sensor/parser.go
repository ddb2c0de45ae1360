package sensor

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/fittracker/internal/models"
)

var (
	// packageRe matches: SWM;720;1;80;25;40 (code may be quoted)
	packageRe = regexp.MustCompile(`^"?([A-Za-z]+)"?\s*(?:;(.*))?$`)

	// columnHeaderRe matches: TYPE;DATA or TYPE;ACTION;DURATION;...
	columnHeaderRe = regexp.MustCompile(`(?i)^"?type"?(;[A-Z_;"]*)?$`)
)

// Parse reads a package file: one package per line, a workout code followed
// by semicolon-separated values. Blank lines and # comments are skipped.
func Parse(r io.Reader) ([]models.Package, error) {
	scanner := bufio.NewScanner(r)
	var pkgs []models.Package
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if columnHeaderRe.MatchString(line) {
			continue
		}

		m := packageRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: unrecognized package %q", lineNo, line)
		}
		data, err := parseValues(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pkgs = append(pkgs, models.Package{
			WorkoutType: m[1],
			Data:        data,
			Line:        lineNo,
		})
	}

	return pkgs, scanner.Err()
}

// parseValues splits "720;1;80" into numbers. A trailing separator is allowed.
func parseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(strings.TrimSuffix(s, ";"), ";")
	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := parseEuropeanFloat(f)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseEuropeanFloat converts a decimal string to float64, accepting a comma
// as the decimal separator. "1,5" -> 1.5, "80" -> 80
func parseEuropeanFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
