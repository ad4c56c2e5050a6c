package cmd

import (
	"github.com/spf13/cobra"

	"github.com/riftlens/winreport/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize winreport configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the report build and writes a .winreport.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
