package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	profileFile string
	debug       bool

	profile SimulationProfile
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the pizzasim command tree.
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "pizzasim",
		Short:        "Order pizzas from a fixed menu and watch them get made",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			profile, err := LoadProfile(opts.profileFile)
			if err != nil {
				return err
			}
			if opts.debug {
				profile.DebugMode = true
			}
			opts.profile = profile

			log.SetOutput(cmd.ErrOrStderr())
			if profile.DebugMode {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&opts.profileFile, "profile", "", "Simulation profile definition file (JSON)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newOrderCmd(opts), newShowMenuCmd(), newReplayCmd(opts))
	return root
}

func newOrderCmd(opts *cliOptions) *cobra.Command {
	var (
		delivery bool
		size     string
	)

	cmd := &cobra.Command{
		Use:   "order <pizza>",
		Short: "Prepare a pizza, then deliver it or leave it for pickup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				answer, err := promptSize(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				size = answer
			}

			pizzeria := NewPizzeria(PizzeriaConfig{
				Profile: opts.profile,
				Menu:    NewMenu(),
				Out:     cmd.OutOrStdout(),
			})

			_, err := pizzeria.Order(OrderRequest{Pizza: args[0], Size: size, Delivery: delivery})
			if errors.Is(err, ErrPizzaNotFound) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&delivery, "delivery", false, "Deliver the pizza instead of leaving it for pickup")
	cmd.Flags().StringVar(&size, "size", "", "Pizza size (L or XL); prompted for when omitted")
	return cmd
}

// promptSize asks for a size on in. An empty answer means L.
func promptSize(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Size (L/XL) [L]: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read size: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return string(SizeL), nil
	}
	return line, nil
}

func newShowMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-menu",
		Short: "Show the available menu",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range NewMenu().Listing() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}

func newReplayCmd(opts *cliOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "replay <orders.json>",
		Short: "Place every order from a JSON file, one at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			oi, err := NewOrderIssuer(args[0], limit)
			if err != nil {
				return err
			}

			opts.profile.Describe(out)
			fmt.Fprintln(out, "========== Simulation has started ==========")

			analytics := NewAnalytics(opts.profile.DebugMode)
			pizzeria := NewPizzeria(PizzeriaConfig{
				Profile:   opts.profile,
				Menu:      NewMenu(),
				Analytics: analytics,
				Out:       out,
			})

			if _, err := oi.Start(pizzeria); err != nil {
				return err
			}

			fmt.Fprintln(out, "========== Simulation has completed ==========")
			fmt.Fprintln(out, "Simulation results:")
			fmt.Fprint(out, analytics.GetSummary())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max number of orders to place (0 places all)")
	return cmd
}
