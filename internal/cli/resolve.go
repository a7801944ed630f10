package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"overlay-config/internal/app"
	"overlay-config/internal/types"
)

type resolveOptions struct {
	RootDir   string
	OutputDir string
	Format    string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve overlay configuration for all partitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RootDir, "root", "/", "Partition root directory")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Output directory (optional)")
	cmd.Flags().StringVar(&opts.Format, "format", "list", "Output format: list or yaml")

	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RootDir:   resolveString(cmd, opts.RootDir, "root", "root"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:    types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("partition order: %s\n", result.PartitionOrder)
	for _, config := range result.Configurations {
		fmt.Printf("- %s enabled=%t mutable=%t index=%d partition=%s\n",
			config.PackageName, config.Enabled, config.Mutable, config.ConfigIndex, config.Partition)
	}
	if result.OutputDir != "" {
		fmt.Printf("written: %s\n", result.OutputDir)
	}
	return nil
}
