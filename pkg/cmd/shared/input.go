package shared

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"dario.cat/mergo"
	"sigs.k8s.io/yaml"

	"github.com/go-kure/kure/pkg/errors"
)

// LoadInputs reads each -i/--input path (or stdin for "-"), parses it as a
// JSON or YAML object, and deep-merges them in argument order: later paths
// override earlier ones at non-object leaves (mergo.Merge with
// mergo.WithOverride).
func LoadInputs(paths []string) (map[string]interface{}, error) {
	merged := map[string]interface{}{}
	for _, p := range paths {
		var data []byte
		var err error
		if p == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(p)
		}
		if err != nil {
			return nil, errors.NewFileError("read", p, "failed to read input file", err)
		}

		var obj map[string]interface{}
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, errors.NewParseError(p, "invalid JSON/YAML input", 0, 0, err)
		}
		if err := mergo.Merge(&merged, obj, mergo.WithOverride()); err != nil {
			return nil, errors.Wrapf(err, "failed to merge input %s", p)
		}
	}
	return merged, nil
}

// ApplySets parses each -s/--set "dotted.path=json-literal" assignment,
// building nested maps along the dotted path with the parsed literal as
// leaf value, and merges the result into dest (later assignments override
// earlier ones and override --input values at the same path).
func ApplySets(dest map[string]interface{}, assignments []string) error {
	for _, a := range assignments {
		path, literal, ok := strings.Cut(a, "=")
		if !ok {
			return errors.Errorf("invalid --set %q: expected dotted.path=value", a)
		}
		value, err := parseLiteral(literal)
		if err != nil {
			return errors.Wrapf(err, "invalid --set value for %s", path)
		}
		nested := buildNested(strings.Split(path, "."), value)
		if err := mergo.Merge(&dest, nested, mergo.WithOverride()); err != nil {
			return errors.Wrapf(err, "failed to apply --set %s", path)
		}
	}
	return nil
}

func buildNested(segments []string, value interface{}) map[string]interface{} {
	if len(segments) == 1 {
		return map[string]interface{}{segments[0]: value}
	}
	return map[string]interface{}{segments[0]: buildNested(segments[1:], value)}
}

// parseLiteral parses a --set value as JSON when possible (numbers, bools,
// null, quoted strings, objects, arrays), falling back to a bare string for
// anything that fails to parse as JSON - so `-s name=web` needs no quoting.
func parseLiteral(s string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v, nil
	}
	return s, nil
}
