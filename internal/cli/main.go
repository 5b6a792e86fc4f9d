package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "scenesync <scenes.json>",
		Short:        "Reconcile narration audio timing with discrete video clip durations",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("timings", "", "Word-timestamp timings JSON (omit to estimate from word counts)")
	root.Flags().String("topic", "", "Topic of the narration run (required)")
	root.Flags().String("audio", "", "Narration audio path, recorded in the audit log")
	root.Flags().String("out", "", "Output directory root")
	root.Flags().String("config", "scenesync.yaml", "Config file")

	// Hidden tuning flag (internal)
	root.Flags().Float64("wps", 0, "Narration words per second for estimation")
	_ = root.Flags().MarkHidden("wps")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
