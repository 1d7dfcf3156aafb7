package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/webbmaffian/go-arr/internal/log"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "arrbench",
	Short: "Exercise and time the go-arr containers.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

func init() {
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	log.AddFlags(rootCommand.PersistentFlags())

	runCommand.Flags().Int("count", 1_000_000, "number of elements per scenario")
	runCommand.Flags().Int("runs", 5, "number of timed runs")
	runCommand.Flags().String("snapshot", "", "save the sorted sequence to this file and verify it")
	runCommand.Flags().StringSlice("scenario", nil, "scenarios to run (default all)")

	rootCommand.AddCommand(runCommand, checkCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Error("arrbench failed", zap.Error(err))
		os.Exit(1)
	}
}
