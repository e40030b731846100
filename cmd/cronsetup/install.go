package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronsetup/internal/constants"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install or refresh the managed cron jobs",
	Args:  cobra.NoArgs,
	RunE:  runInstall,
}

func init() {
	addDryRunFlag(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	result, err := inst.Install(cmd.Context(), dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprint(out, constants.MsgDryRunHeader)
		fmt.Fprint(out, result.Content)
		return nil
	}

	for _, job := range result.Jobs {
		fmt.Fprintf(out, constants.MsgJobInstalled, job.Name, job.Line().Raw)
	}
	return nil
}
