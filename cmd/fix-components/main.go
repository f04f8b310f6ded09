package main

import (
	"fmt"
	"os"

	"github.com/jobtrackai/fix-components/pkg/version"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "fix-components",
	Short: "Restore the landing page components",
	Long: `Writes the bundled landing page components (Header, Hero, Amplify)
under src/components, creating directories as needed and overwriting any
existing copies.

Run without arguments to write into the current directory. The target
directory and confirmation prompt can be set with FIX_COMPONENTS_ROOT and
FIX_COMPONENTS_CONFIRM, or in a YAML file passed with --config.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runFix,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML configuration file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
