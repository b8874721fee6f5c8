package kurel

import (
	"github.com/spf13/pflag"

	"github.com/go-kure/kure/pkg/cmd/shared"
	"github.com/go-kure/kure/pkg/compiler"
	"github.com/go-kure/kure/pkg/ingestor"
	"github.com/go-kure/kure/pkg/logger"
)

// sourceOptions holds the flags common to render, install, and uninstall:
// everything needed to load a package, compile it against merged input, and
// ingest the result into a filtered, path-ordered manifest list.
type sourceOptions struct {
	inputs  []string
	sets    []string
	release string
	only    []string
	except  []string
}

func (o *sourceOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&o.inputs, "input", "i", nil, "input JSON/YAML file (repeatable, \"-\" reads stdin); later files override earlier ones")
	flags.StringArrayVarP(&o.sets, "set", "s", nil, "set a dotted.path=value override (repeatable, applied after --input)")
	flags.StringVar(&o.release, "release", "", "release name; the install name becomes <release>-<package>")
	flags.StringArrayVar(&o.only, "only", nil, "limit to manifests at these dotted paths (repeatable, comma-separated)")
	flags.StringArrayVar(&o.except, "except", nil, "exclude manifests at these dotted paths (repeatable, comma-separated)")
}

// compile loads pkgPath, merges -i/-s into a single input document, compiles
// it, and ingests the result into manifests filtered by --only/--except.
func (o *sourceOptions) compile(log logger.Logger, pkgPath string) ([]ingestor.Manifest, error) {
	pkg, err := compiler.NewLoader(log).Load(pkgPath)
	if err != nil {
		return nil, err
	}

	input, err := shared.LoadInputs(o.inputs)
	if err != nil {
		return nil, err
	}
	if err := shared.ApplySets(input, o.sets); err != nil {
		return nil, err
	}

	var release *compiler.Release
	if o.release != "" {
		release = &compiler.Release{Name: o.release}
	}

	value, err := compiler.New(pkg, release, log).Compile(asCompileInput(input))
	if err != nil {
		return nil, err
	}

	return ingestor.Ingest(value, shared.BuildFilter(o.only, o.except))
}

// asCompileInput reports "no input" as nil rather than an empty map, so a
// package with no schema.json and no -i/-s flags compiles the same way it
// would with input omitted entirely.
func asCompileInput(merged map[string]interface{}) interface{} {
	if len(merged) == 0 {
		return nil
	}
	return merged
}
