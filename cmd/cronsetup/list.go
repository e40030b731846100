package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/cronsetup/internal/constants"
	"github.com/aatumaykin/cronsetup/internal/installer"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"status"},
	Short:   "Show the managed cron jobs and their next run",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}

	statuses, err := inst.Status(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch listOutput {
	case "text", "":
		printStatuses(out, statuses)
		return nil
	case "json":
		data, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(statuses); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format: %s (expected: text, json, yaml)", listOutput)
	}
}

func printStatuses(out io.Writer, statuses []installer.Status) {
	fmt.Fprint(out, constants.MsgListHeader)
	for _, st := range statuses {
		fmt.Fprintf(out, constants.MsgListJob, st.Job.Name)
		fmt.Fprintf(out, constants.MsgListSchedule, st.Job.Schedule)
		if !st.Installed {
			fmt.Fprint(out, constants.MsgListMissing)
		} else {
			if st.NextRun != nil {
				fmt.Fprintf(out, constants.MsgListNext, st.NextRun.Format(time.RFC3339))
			}
			for _, entry := range st.Entries {
				fmt.Fprintf(out, constants.MsgListCommand, entry)
			}
		}
		fmt.Fprint(out, constants.MsgListSep)
	}
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json, yaml")
}
