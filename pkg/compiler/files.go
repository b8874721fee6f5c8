package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gobwas/glob"
)

// filesCallable resolves the files(glob, input) host callable against
// <package-root>/files: matching files are read, sorted by path, and each
// is rendered by a Jinja/Tera-style text templater (text/template extended
// with sprig's function set) using input as its data context.
type filesCallable struct {
	root string // <package-root>/files
}

func newFilesCallable(packageDir string) *filesCallable {
	return &filesCallable{root: filepath.Join(packageDir, "files")}
}

func (c *filesCallable) call(pattern string, input interface{}) (interface{}, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, newRenderError("invalid glob pattern: "+pattern, nil)
	}

	var matches []string
	err = filepath.Walk(c.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if g.Match(rel) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, newRenderError("cannot read files directory: "+err.Error(), nil)
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		return nil, newRenderError("No template found for glob "+pattern, nil)
	}

	data := input
	if data == nil {
		data = map[string]interface{}{}
	}

	rendered := make([]string, len(matches))
	for i, rel := range matches {
		out, err := c.render(filepath.Join(c.root, rel), data)
		if err != nil {
			return nil, newRenderError("rendering "+rel+": "+err.Error(), nil)
		}
		rendered[i] = out
	}

	if len(rendered) == 1 {
		return rendered[0], nil
	}
	out := make([]interface{}, len(rendered))
	for i, s := range rendered {
		out[i] = s
	}
	return out, nil
}

func (c *filesCallable) render(path string, data interface{}) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(filepath.Base(path)).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
