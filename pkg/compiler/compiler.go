package compiler

import (
	"path/filepath"

	"github.com/go-kure/kure/pkg/logger"
)

// Compiler drives a single package through schema validation and template
// evaluation, handling the recursive include() callable by constructing a
// fresh child Compiler per call that inherits the parent Context verbatim.
type Compiler struct {
	pkg    *Package
	ctx    Context
	loader *Loader
	log    logger.Logger
}

// New builds a root Compiler for pkg. ctx.Vendor/Release come from
// NewContext(pkg.Dir, release); callers compiling a subpackage via include
// should use newChild instead so the parent Context propagates unchanged.
func New(pkg *Package, release *Release, log logger.Logger) *Compiler {
	if log == nil {
		log = logger.Default()
	}
	return &Compiler{
		pkg:    pkg,
		ctx:    NewContext(pkg.Dir, release),
		loader: NewLoader(log),
		log:    log,
	}
}

func newChild(pkg *Package, ctx Context, loader *Loader, log logger.Logger) *Compiler {
	return &Compiler{pkg: pkg, ctx: ctx, loader: loader, log: log}
}

// Compile runs the full compile procedure: validates input against the
// package's schema (when present), assembles the evaluation context, and
// runs the template evaluator.
func (c *Compiler) Compile(input interface{}) (interface{}, error) {
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	props := evalProps{
		Package: map[string]interface{}{"name": c.pkg.Spec.Name, "version": c.pkg.Spec.Version},
		Input:   input,
		Files:   newFilesCallable(c.pkg.Dir).call,
		Include: c.include,
	}
	if c.ctx.Release != nil {
		props.Release = map[string]interface{}{"name": c.ctx.Release.Name}
	}

	c.log.Debug("evaluating %s", c.pkg.Target.Main)
	return Evaluate(c.pkg.Target, c.ctx.Vendor, props)
}

func (c *Compiler) validateInput(input interface{}) error {
	hasSchema := c.pkg.Schema != nil
	hasInput := input != nil

	switch {
	case hasSchema && !hasInput:
		return newCompileError("NoInput", "schema.json requires an input", nil)
	case !hasSchema && hasInput:
		return newCompileError("NoValidator", "package has no schema.json to validate input against", nil)
	case hasSchema:
		validator, err := NewValidator(c.pkg.Schema)
		if err != nil {
			return err
		}
		return validator.Validate(input)
	default:
		return nil
	}
}

// include implements the include(name, input) host callable: it locates
// <Context.Vendor>/<name>, loads it as a Package, and compiles it with a
// child Compiler that inherits this Context verbatim (same vendor, same
// release) so the include graph shares exactly one release scope.
func (c *Compiler) include(name string, input interface{}) (interface{}, error) {
	subDir := filepath.Join(c.ctx.Vendor, name)
	pkg, err := c.loader.Load(subDir)
	if err != nil {
		return nil, newRenderError("include("+name+"): "+err.Error(), []Frame{{Desc: "include", File: subDir}})
	}
	child := newChild(pkg, c.ctx, c.loader, c.log)
	value, err := child.Compile(input)
	if err != nil {
		return nil, newRenderError("include("+name+"): "+err.Error(), []Frame{{Desc: "include", File: subDir}})
	}
	return value, nil
}
