package kurel

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/go-kure/kure/pkg/cmd/shared"
	"github.com/go-kure/kure/pkg/errors"
	"github.com/go-kure/kure/pkg/ingestor"
	kio "github.com/go-kure/kure/pkg/io"
)

func newRenderCommand(verbosity *int) *cobra.Command {
	var src sourceOptions
	var output string

	cmd := &cobra.Command{
		Use:     "render <package>",
		Aliases: []string{"r"},
		Short:   "Compile a package and print its manifests",
		Long: `Render loads a package, validates and merges its input, runs the
Jsonnet templates, and writes the resulting manifests.

With -o pointing at a directory, each manifest is written to
<dir>/<path>.yaml, <path> being its ingested path with the leading slash
stripped and slashes replaced by path separators. With -o omitted, "-", or a
file, every manifest is streamed as one concatenated YAML document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := shared.NewLogger(*verbosity)
			manifests, err := src.compile(log, args[0])
			if err != nil {
				return errors.Wrap(err, "render failed")
			}
			return writeManifests(manifests, output)
		},
	}

	src.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory, or file (\"-\" or omitted streams to stdout)")
	return cmd
}

func writeManifests(manifests []ingestor.Manifest, output string) error {
	if output == "" || output == "-" {
		return streamManifests(manifests, os.Stdout)
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return writeManifestsToDir(manifests, output)
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.NewFileError("create", output, "failed to create output file", err)
	}
	defer f.Close()
	return streamManifests(manifests, f)
}

func streamManifests(manifests []ingestor.Manifest, w *os.File) error {
	objects := make([]*client.Object, 0, len(manifests))
	for _, m := range manifests {
		obj := client.Object(&unstructured.Unstructured{Object: m.Value})
		objects = append(objects, &obj)
	}

	data, err := kio.EncodeObjectsToYAMLWithOptions(objects, kio.EncodeOptions{KubernetesFieldOrder: true})
	if err != nil {
		return errors.Wrap(err, "failed to encode manifests")
	}
	_, err = w.Write(data)
	return err
}

func writeManifestsToDir(manifests []ingestor.Manifest, dir string) error {
	for _, m := range manifests {
		rel := filepath.FromSlash(m.Path) + ".yaml"
		dest := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}

		obj := client.Object(&unstructured.Unstructured{Object: m.Value})
		data, err := kio.EncodeObjectsToYAMLWithOptions([]*client.Object{&obj}, kio.EncodeOptions{KubernetesFieldOrder: true})
		if err != nil {
			return errors.Wrapf(err, "failed to encode manifest %s", m.Path)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return errors.NewFileError("write", dest, "failed to write manifest", err)
		}
	}
	return nil
}
