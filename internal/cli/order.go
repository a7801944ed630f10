package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"overlay-config/internal/app"
)

type orderOptions struct {
	RootDir string
}

func newOrderCommand() *cobra.Command {
	opts := orderOptions{}
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Show the effective partition order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOrder(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.RootDir, "root", "/", "Partition root directory")
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	return cmd
}

func runOrder(ctx context.Context, cmd *cobra.Command, opts orderOptions) error {
	service := newAppService()
	result, err := service.Order(ctx, app.OrderRequest{
		RootDir: resolveString(cmd, opts.RootDir, "root", "root"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("partition order: %s\n", result.PartitionOrder)
	if result.OverrideAccepted {
		fmt.Println("source: partition_order.xml override")
	} else {
		fmt.Println("source: built-in default")
	}
	return nil
}
