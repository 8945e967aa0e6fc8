package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"model-mapper/modelmap"
)

const maxLineSize = 1 << 20

var errTrailingData = errors.New("unexpected data after the first JSON value (use --lines for NDJSON)")

func newMapCommand(a *app) *cobra.Command {
	var (
		direction   string
		input       string
		lines       bool
		nullMissing bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map JSON records with a mapping file",
		Long: `Map reads JSON records and applies one mapping of the mapping file.

The input is a single object, an array of objects, or with --lines one object
per line. Output has the same shape.`,
		Example: `  modelmap map --spec map.yaml --mapping user --direction model < wire.json
  modelmap map --spec map.yaml -d wire --lines -i users.ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := modelmap.ParseDirection(direction)
			if err != nil {
				return err
			}

			spec, err := a.specification()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()

				in = f
			}

			opts := []modelmap.Option{modelmap.WithLogger(a.logger)}
			if nullMissing {
				opts = append(opts, modelmap.WithMissingKeys(modelmap.NullMissing))
			}

			m := &recordMapper{spec: spec, dir: dir, opts: opts}

			var n int
			if lines {
				n, err = m.mapLines(in, cmd.OutOrStdout())
			} else {
				n, err = m.mapDocument(in, cmd.OutOrStdout())
			}

			if err != nil {
				return err
			}

			a.logger.Info("mapped records", slog.Int("count", n), slog.String("direction", dir.String()))

			return nil
		},
	}

	cmd.Flags().String("spec", "", "Mapping file")
	cmd.Flags().String("mapping", "", "Mapping name (optional when the file has one mapping)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Direction: model or wire")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file (default stdin)")
	cmd.Flags().BoolVar(&lines, "lines", false, "Read and write one JSON object per line")
	cmd.Flags().BoolVar(&nullMissing, "null-missing", false, "Write null for absent source keys of direct entries")
	_ = cmd.MarkFlagRequired("direction")

	return cmd
}

type recordMapper struct {
	spec modelmap.Specification
	dir  modelmap.Direction
	opts []modelmap.Option
}

func (m *recordMapper) apply(v any) (modelmap.Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", jsonKind(v))
	}

	return modelmap.Apply(modelmap.Record(obj), m.spec, m.dir, m.opts...)
}

// decodeValue decodes exactly one JSON value from r. Anything but whitespace
// after it is an error.
func decodeValue(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return v, nil
}

// mapDocument maps one object or an array of objects. Nothing is written
// unless every record maps.
func (m *recordMapper) mapDocument(r io.Reader, w io.Writer) (int, error) {
	doc, err := decodeValue(r)
	if err != nil {
		return 0, fmt.Errorf("failed to decode input: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if list, ok := doc.([]any); ok {
		out := make([]modelmap.Record, 0, len(list))

		for i, item := range list {
			rec, err := m.apply(item)
			if err != nil {
				return i, fmt.Errorf("record %d: %w", i, err)
			}

			out = append(out, rec)
		}

		return len(out), enc.Encode(out)
	}

	rec, err := m.apply(doc)
	if err != nil {
		return 0, err
	}

	return 1, enc.Encode(rec)
}

// mapLines maps newline-delimited JSON, skipping blank lines. Each record is
// flushed once mapped, so on failure the output holds exactly the records
// before the failing line.
func (m *recordMapper) mapLines(r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	n := 0

	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}

		v, err := decodeValue(bytes.NewReader(text))
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := m.apply(v)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}

		if err := enc.Encode(rec); err != nil {
			return n, err
		}

		if err := bw.Flush(); err != nil {
			return n, err
		}

		n++
	}

	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("failed to read input: %w", err)
	}

	return n, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	default:
		return "number"
	}
}
