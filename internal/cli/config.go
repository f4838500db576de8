package cli

import (
	"fmt"

	"github.com/c2nes/shorthand/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the shorthand configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the merged configuration to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			if len(b) == 0 || b[len(b)-1] != '\n' {
				b = append(b, '\n')
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Run: func(cmd *cobra.Command, args []string) {
			p := flags.configPath
			if p == "" {
				p = config.Path()
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
		},
	})
	return cmd
}
