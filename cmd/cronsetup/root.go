package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath  string
	projectDir  string
	crontabFile string
	debug       bool
	dryRun      bool
)

// rootCmd installs the jobs when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cronsetup",
	Short: "Install the scraper and watchdog cron jobs",
	Long: `cronsetup rewrites the current user's crontab so that it runs the scraper
daily at 03:00 and the watchdog every hour. Paths are derived from the location
of the cronsetup binary (<project>/bin/cronsetup) unless --project-dir is given.

Running it again replaces the previous entries instead of adding duplicates.`,
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInstall,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default <project>/cronsetup.toml)")
	flags.StringVar(&projectDir, "project-dir", "", "project directory (default: parent of the binary's directory)")
	flags.StringVar(&crontabFile, "crontab-file", "", "read and write this file instead of the user crontab")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	addDryRunFlag(rootCmd)

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// addDryRunFlag registers --dry-run on a command that writes the crontab.
func addDryRunFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resulting crontab without changing anything")
}
