package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"model-mapper/internal/mapping"
	"model-mapper/internal/match"
)

func newSuggestCommand(a *app) *cobra.Command {
	var (
		wirePath  string
		modelPath string
		modelKeys []string
		name      string
		th        = match.DefaultThresholds()
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Propose a mapping from sample records",
		Long: `Suggest compares the keys of a sample wire record with model keys and
prints a mapping file holding the confident direct entries.

Model keys come from a sample model record (--model) or are listed with
--model-keys. Unmatched and ambiguous keys are logged.`,
		Example: `  modelmap suggest --wire wire.json --model-keys id,username,isAdmin --name user`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wireKeys, err := sampleKeys(wirePath)
			if err != nil {
				return err
			}

			keys := modelKeys
			if modelPath != "" {
				if keys, err = sampleKeys(modelPath); err != nil {
					return err
				}
			}

			if len(keys) == 0 {
				return errors.New("no model keys (use --model or --model-keys)")
			}

			m := mapping.Mapping{Name: name}

			for _, s := range match.Suggest(keys, wireKeys, th) {
				switch {
				case s.Matched():
					m.OneToOne = append(m.OneToOne, mapping.KeyPair{Model: s.ModelKey, Wire: s.WireKey})
				case s.Ambiguous:
					a.logger.Warn("ambiguous key",
						slog.String("model_key", s.ModelKey),
						slog.Any("candidates", candidateKeys(s.Candidates)),
					)
				default:
					a.logger.Info("unmatched key", slog.String("model_key", s.ModelKey))
				}
			}

			data, err := mapping.Marshal(&mapping.File{Version: mapping.SchemaVersion, Mappings: []mapping.Mapping{m}})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&wirePath, "wire", "", "Sample wire record (JSON)")
	cmd.Flags().StringVar(&modelPath, "model", "", "Sample model record (JSON)")
	cmd.Flags().StringSliceVar(&modelKeys, "model-keys", nil, "Model keys, comma separated")
	cmd.Flags().StringVar(&name, "name", "generated", "Name of the generated mapping")
	cmd.Flags().Float64Var(&th.MinScore, "min-score", th.MinScore, "Lowest accepted similarity")
	cmd.Flags().Float64Var(&th.MinGap, "min-gap", th.MinGap, "Required lead over the runner-up")
	_ = cmd.MarkFlagRequired("wire")
	cmd.MarkFlagsMutuallyExclusive("model", "model-keys")

	return cmd
}

// sampleKeys returns the sorted keys of a JSON object, or the union of keys
// of an array of objects.
func sampleKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	items, ok := doc.([]any)
	if !ok {
		items = []any{doc}
	}

	seen := map[string]bool{}

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: item %d is %s, not an object", path, i, jsonKind(item))
		}

		for k := range obj {
			seen[k] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys, nil
}

func candidateKeys(cands []match.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.WireKey)
	}

	return out
}
