package cli

import (
	"github.com/rcliao/zoo/internal/demo"
	"github.com/spf13/cobra"
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the constructor and feeding walkthrough",
		Args:  cobra.NoArgs,
		Run:   runRun,
	}

	dispatchCmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Show shadowed Eat versus dynamic Meow on a cat",
		Args:  cobra.NoArgs,
		Run:   runDispatch,
	}

	RootCmd.AddCommand(runCmd, dispatchCmd)
}

func runRun(cmd *cobra.Command, args []string) {
	logger, cleanup, err := openLogger()
	if err != nil {
		exitErr("open logger", err)
	}
	defer cleanup()

	demo.Reference(cmd.OutOrStdout(), logger)
}

func runDispatch(cmd *cobra.Command, args []string) {
	logger, cleanup, err := openLogger()
	if err != nil {
		exitErr("open logger", err)
	}
	defer cleanup()

	demo.Dispatch(cmd.OutOrStdout(), logger)
}
