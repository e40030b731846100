package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronsetup/internal/constants"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the managed cron jobs",
	Args:  cobra.NoArgs,
	RunE:  runUninstall,
}

func init() {
	addDryRunFlag(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	result, err := inst.Uninstall(cmd.Context(), dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprint(out, constants.MsgDryRunHeader)
		fmt.Fprint(out, result.Content)
		return nil
	}

	if len(result.Removed) == 0 {
		fmt.Fprint(out, constants.MsgNothingToRemove)
		return nil
	}
	fmt.Fprintf(out, constants.MsgJobsRemoved, len(result.Removed))
	return nil
}
