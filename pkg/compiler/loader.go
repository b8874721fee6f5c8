package compiler

import (
	"encoding/json"
	"os"
	"path/filepath"

	kerrors "github.com/go-kure/kure/pkg/errors"
	"github.com/go-kure/kure/pkg/logger"
)

// Loader loads a Package from a directory or a ".tgz" archive.
type Loader struct {
	log logger.Logger
}

// NewLoader returns a Loader that logs through log (logger.Default() if
// nil).
func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.Default()
	}
	return &Loader{log: log}
}

// Load reads path, which may be a package directory or a ".tgz" archive of
// one, and returns a validated Package. Per the data model invariant, a
// schema.json without a valid example.json (or vice versa) fails loading,
// as does a missing templates/main.jsonnet.
func (l *Loader) Load(path string) (*Package, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, kerrors.NewFileError("stat", path, "path not found", err)
	}

	dir := path
	if !info.IsDir() {
		unpacked, err := Unpack(path)
		if err != nil {
			return nil, err
		}
		dir = unpacked
		l.log.Debug("unpacked archive %s to %s", path, dir)
	}

	spec, err := loadSpec(dir)
	if err != nil {
		return nil, err
	}

	mainPath := filepath.Join(dir, "templates", "main.jsonnet")
	if _, err := os.Stat(mainPath); err != nil {
		return nil, newLoadError("NoMain", mainPath, err)
	}

	schema, example, err := loadSchemaAndExample(dir)
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		Spec:    *spec,
		Dir:     dir,
		Schema:  schema,
		Example: example,
		Target:  NewTarget(dir),
	}

	if schema != nil {
		validator, err := NewValidator(schema)
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateExample(example); err != nil {
			return nil, err
		}
	}

	l.log.Info("loaded package %s %s from %s", spec.Name, spec.Version, dir)
	return pkg, nil
}

func loadSpec(dir string) (*Spec, error) {
	specPath := filepath.Join(dir, "kcp.json")
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, newLoadError("NoSpec", specPath, err)
	}
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, newLoadError("InvalidSpec", specPath, err)
	}
	if spec.Name == "" || spec.Version == "" {
		return nil, newLoadError("InvalidSpec", specPath, nil)
	}
	return &spec, nil
}

// loadSchemaAndExample reads the optional schema.json/example.json pair.
// Per the invariant, if one exists without the other, loading fails; a
// missing pair (neither file present) is not an error, it simply means no
// validation is performed.
func loadSchemaAndExample(dir string) ([]byte, map[string]interface{}, error) {
	schemaPath := filepath.Join(dir, "schema.json")
	examplePath := filepath.Join(dir, "example.json")

	schemaData, schemaErr := os.ReadFile(schemaPath)
	exampleData, exampleErr := os.ReadFile(examplePath)

	schemaExists := schemaErr == nil
	exampleExists := exampleErr == nil

	if !schemaExists && !exampleExists {
		return nil, nil, nil
	}
	if schemaExists && !exampleExists {
		return nil, nil, newLoadError("NoExample", examplePath, exampleErr)
	}
	if exampleExists && !schemaExists {
		return nil, nil, newLoadError("NoSchema", schemaPath, schemaErr)
	}

	var example map[string]interface{}
	if err := json.Unmarshal(exampleData, &example); err != nil {
		return nil, nil, newLoadError("InvalidExample", examplePath, err)
	}

	return schemaData, example, nil
}
