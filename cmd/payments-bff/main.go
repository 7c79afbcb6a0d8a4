package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "payments-bff",
		Short:         "Payments BFF - prices purchases and charges them on the payment service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.transportSet = cmd.Flags().Changed("transport")
			opts.addrSet = cmd.Flags().Changed("addr")
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&opts.transport, "transport", "t", "", "Payment transport (http, grpc)")
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "HTTP listen address")

	return cmd
}
