package mapping

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"model-mapper/modelmap"
)

// ErrNotAFragment is returned when an expression does not evaluate to a map.
var ErrNotAFragment = errors.New("transform result is not a map")

// CompileExpr compiles an expr-lang expression into a transform. The source
// record is the expression environment, so its keys are plain identifiers:
//
//	{"isAdmin": "admin" in user_perms}
//
// The expression must evaluate to a map; its keys are merged in sorted order.
func CompileExpr(code string) (modelmap.TransformFunc, error) {
	program, err := expr.Compile(code)
	if err != nil {
		return nil, err
	}

	return func(src modelmap.Record) (modelmap.Fragment, error) {
		out, err := expr.Run(program, map[string]any(src))
		if err != nil {
			return modelmap.Fragment{}, err
		}

		m, ok := out.(map[string]any)
		if !ok {
			return modelmap.Fragment{}, fmt.Errorf("%w: got %T", ErrNotAFragment, out)
		}

		return modelmap.FragmentFromMap(m), nil
	}, nil
}
