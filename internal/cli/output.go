package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/govalues/radix"
	"github.com/govalues/radix/internal/config"
)

// result is one computed value as it is rendered by every command.
type result struct {
	Input string       `json:"input" yaml:"input"`
	Base  int          `json:"base" yaml:"base"`
	Value radix.Number `json:"value" yaml:"value"`
}

func newResult(input string, n radix.Number) result {
	return result{Input: input, Base: n.System().Base(), Value: n}
}

// render writes results to w in the given output format.
// Text output has one value per line, JSON output one object per line and
// YAML output one document per result.
func render(w io.Writer, format string, results ...result) error {
	switch format {
	case config.OutputText:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Value); err != nil {
				return err
			}
		}
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding %v: %w", r.Input, err)
			}
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding %v: %w", r.Input, err)
			}
		}
		return enc.Close()
	default:
		return ErrUsage.New("unknown output format %q", format)
	}
	return nil
}
