package compiler

import (
	"path/filepath"
)

// Spec is the required "kcp.json" package descriptor.
type Spec struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Release is the optional installation scope carried through an include
// graph. When set, the canonical installation name is
// "<release.name>-<package.name>"; otherwise it is the package name alone.
type Release struct {
	Name string `json:"name"`
}

// InstallName returns the canonical installation name for pkg under rel.
// rel may be nil.
func InstallName(pkgName string, rel *Release) string {
	if rel == nil || rel.Name == "" {
		return pkgName
	}
	return rel.Name + "-" + pkgName
}

// Context is the immutable, shareable record propagated unchanged through a
// chain of include() calls: same vendor directory, same release scope.
// Nothing after construction mutates it.
type Context struct {
	Root    string
	Release *Release
	Vendor  string
}

// NewContext builds a Context whose Vendor directory is always root/vendor.
func NewContext(root string, rel *Release) Context {
	return Context{Root: root, Release: rel, Vendor: filepath.Join(root, "vendor")}
}

// Target describes the on-disk layout of a single package's template
// workspace.
type Target struct {
	Dir  string // package root
	Main string // templates/main.jsonnet
	Lib  string // root/lib
}

// NewTarget builds a Target for a package rooted at dir.
func NewTarget(dir string) Target {
	return Target{
		Dir:  dir,
		Main: filepath.Join(dir, "templates", "main.jsonnet"),
		Lib:  filepath.Join(dir, "lib"),
	}
}

// Package is a loaded, validated package ready to compile. Schema and
// Example are nil when the package carries neither; per the data model
// invariant, if one is present on disk then both must load successfully.
type Package struct {
	Spec    Spec
	Dir     string
	Schema  []byte // raw schema.json, nil if absent
	Example map[string]interface{}
	Target  Target
}

// Name returns the package's declared name.
func (p *Package) Name() string { return p.Spec.Name }

