package kurel

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-kure/kure/pkg/cmd/shared"
	"github.com/go-kure/kure/pkg/cmd/shared/options"
)

// NewKurelCommand creates the root command for the kurel CLI: render,
// install, and uninstall a Kubernetes configuration package compiled from
// Jsonnet templates and validated input.
func NewKurelCommand() *cobra.Command {
	var (
		configFile string
		verbosity  int
	)
	globalOpts := options.NewGlobalOptions()

	cmd := &cobra.Command{
		Use:   "kurel",
		Short: "Compile and apply Kubernetes configuration packages",
		Long: `Kurel compiles a package of Jsonnet templates and a JSON Schema
into Kubernetes manifests, and can apply or remove the result on a cluster.

A package is a directory (or ".tgz" archive) carrying a kcp.json descriptor,
templates/main.jsonnet, and an optional schema.json/example.json pair. Input
is supplied with repeatable -i/--input files and -s/--set overrides, merged
in order and validated against the schema when one is present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			globalOpts.ConfigFile = configFile
			shared.InitConfig("kurel", globalOpts)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.kurel.yaml)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase output verbosity (repeatable)")

	cmd.AddCommand(
		newRenderCommand(&verbosity),
		newInstallCommand(&verbosity),
		newUninstallCommand(&verbosity),
		shared.NewCompletionCommand(),
		shared.NewVersionCommand("kurel"),
	)

	return cmd
}

// Execute runs the root command.
func Execute() {
	cmd := NewKurelCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
