package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested
// name or alias.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(results *domain.PlanComparison) ([]byte, error)
	// Name returns a short identifier for lookup / logging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":       "console",
	"text":        "console",
	"txt":         "console",
	"json-pretty": "json",
	"csv-summary": "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the registered formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// GenerateReport formats the comparison and writes it to w.
func GenerateReport(results *domain.PlanComparison, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
