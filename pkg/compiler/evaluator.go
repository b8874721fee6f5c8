package compiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-jsonnet"
	"github.com/google/go-jsonnet/ast"
)

// kctShim is the standard template-side library every package sees as
// `import 'kct.libsonnet'`. It surfaces the five injected properties under
// their stable names without exposing the kct.io/<name> external-variable
// plumbing to package authors.
const kctShim = `{
  package: std.extVar("kct.io/package"),
  release: std.extVar("kct.io/release"),
  input: std.extVar("kct.io/input"),
  include: std.extVar("kct.io/include"),
  files: std.extVar("kct.io/files"),
}
`

// sdkShim provides sdk.inOrder, a helper that stamps the "kct.io/order"
// annotation onto each manifest in object according to its position in
// fields.
const sdkShim = `{
  inOrder(fields, object):: std.native("inOrder")(fields, object),
}
`

// evalProps are the host callables an evaluation binds; Files and Include
// may be nil, in which case calling them from a template is a render error.
type evalProps struct {
	Package interface{}
	Release interface{}
	Input   interface{}
	Files   func(glob string, input interface{}) (interface{}, error)
	Include func(name string, input interface{}) (interface{}, error)
}

// Evaluate runs the Jsonnet program at target.Main with props injected,
// resolving imports against (1) the importing file's directory, then (2)
// target.Lib and vendorDir in order. The parent of the importing file's
// directory (canonical or not) is not searched. It returns
// the manifested result decoded from the evaluator's compact JSON output.
//
// Evaluation happens on a dedicated goroutine: the Jsonnet VM holds
// non-shareable state and this isolates its (large, C-stack-like) call
// depth from the caller's goroutine, mirroring the single-threaded worker
// model the design calls for.
func Evaluate(target Target, vendorDir string, props evalProps) (interface{}, error) {
	type result struct {
		val interface{}
		err error
	}
	done := make(chan result, 1)

	go func() {
		v, err := evaluate(target, vendorDir, props)
		done <- result{v, err}
	}()

	r := <-done
	return r.val, r.err
}

func evaluate(target Target, vendorDir string, props evalProps) (interface{}, error) {
	vm := jsonnet.MakeVM()
	vm.Importer(&chainedImporter{lib: target.Lib, vendor: vendorDir})

	for name, value := range map[string]interface{}{
		"kct.io/package": props.Package,
		"kct.io/release": props.Release,
		"kct.io/input":   props.Input,
	} {
		code, err := json.Marshal(value)
		if err != nil {
			return nil, newRenderError(fmt.Sprintf("cannot encode %s: %v", name, err), nil)
		}
		if value == nil {
			code = []byte("null")
		}
		vm.ExtCode(name, string(code))
	}
	vm.ExtCode("kct.io/files", `std.native("files")`)
	vm.ExtCode("kct.io/include", `std.native("include")`)

	vm.NativeFunction(&jsonnet.NativeFunction{
		Name:   "files",
		Params: ast.Identifiers{"glob", "input"},
		Func: func(args []interface{}) (interface{}, error) {
			var input interface{}
			if len(args) > 1 {
				input = args[1]
			}
			if props.Files == nil {
				return nil, fmt.Errorf("files() is not available in this context")
			}
			glob, _ := args[0].(string)
			return props.Files(glob, input)
		},
	})
	vm.NativeFunction(&jsonnet.NativeFunction{
		Name:   "include",
		Params: ast.Identifiers{"name", "input"},
		Func: func(args []interface{}) (interface{}, error) {
			var input interface{}
			if len(args) > 1 {
				input = args[1]
			}
			if props.Include == nil {
				return nil, fmt.Errorf("include() is not available in this context")
			}
			name, _ := args[0].(string)
			return props.Include(name, input)
		},
	})
	vm.NativeFunction(&jsonnet.NativeFunction{
		Name:   "inOrder",
		Params: ast.Identifiers{"fields", "object"},
		Func: func(args []interface{}) (interface{}, error) {
			return nativeInOrder(args)
		},
	})

	out, err := vm.EvaluateFile(target.Main)
	if err != nil {
		return nil, newRenderError(err.Error(), nil)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(out), &value); err != nil {
		return nil, newCompileError("InvalidOutput", "evaluator produced non-JSON output", err)
	}
	return value, nil
}

// chainedImporter implements the two-resolver chain the design specifies:
// relative-to-importer first, then lib, then vendor.
type chainedImporter struct {
	lib    string
	vendor string
}

func (imp *chainedImporter) Import(importedFrom, importedPath string) (jsonnet.Contents, string, error) {
	if importedPath == "kct.libsonnet" {
		return jsonnet.MakeContents(kctShim), "kct.libsonnet", nil
	}
	if importedPath == "sdk.libsonnet" {
		return jsonnet.MakeContents(sdkShim), "sdk.libsonnet", nil
	}

	candidates := []string{}
	if importedFrom != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(importedFrom), importedPath))
	}
	if imp.lib != "" {
		candidates = append(candidates, filepath.Join(imp.lib, importedPath))
	}
	if imp.vendor != "" {
		candidates = append(candidates, filepath.Join(imp.vendor, importedPath))
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return jsonnet.MakeContents(string(data)), candidate, nil
		}
	}
	return jsonnet.Contents{}, "", fmt.Errorf("import %q not found (searched relative, lib, vendor)", importedPath)
}
