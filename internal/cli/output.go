package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/kbukum/reddish/config"
)

// print writes v to the output in the configured format.
func (a *app) print(v any) error {
	if a.cfg != nil && a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := io.WriteString(a.out, renderText(v)+"\n")
	return err
}

// renderText lays out results for a terminal: one element per line, chunks
// and pairs space-separated, maps as sorted "key: value" lines.
func renderText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, "\n")
	case [][]string:
		lines := make([]string, len(t))
		for i, row := range t {
			lines[i] = strings.Join(row, " ")
		}
		return strings.Join(lines, "\n")
	case map[string]string:
		return renderMap(t, func(s string) string { return s })
	case map[string][]string:
		return renderMap(t, func(s []string) string { return strings.Join(s, " ") })
	case map[string]int:
		return renderMap(t, func(n int) string { return fmt.Sprint(n) })
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func renderMap[V any](m map[string]V, format func(V) string) string {
	keys := slices.Sorted(maps.Keys(m))
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + ": " + format(m[k])
	}
	return strings.Join(lines, "\n")
}
