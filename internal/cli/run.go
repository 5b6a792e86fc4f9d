package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"scenesync/internal/config"
	"scenesync/internal/pipeline"
)

func run(cmd *cobra.Command, scenesPath string) error {
	timingsPath, _ := cmd.Flags().GetString("timings")
	topic, _ := cmd.Flags().GetString("topic")
	audioPath, _ := cmd.Flags().GetString("audio")
	outDir, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")
	wps, _ := cmd.Flags().GetFloat64("wps")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	absScenes, err := filepath.Abs(scenesPath)
	if err != nil {
		return err
	}

	if topic == "" {
		topic = getenvDefault("SCENESYNC_TOPIC", "")
	}
	if outDir == "" {
		outDir = getenvDefault("SCENESYNC_OUT_DIR", cfg.OutDir)
	}
	if wps <= 0 {
		wps = cfg.WordsPerSecond
	}

	pcfg := pipeline.Config{
		ScenesPath:     absScenes,
		TimingsPath:    timingsPath,
		AudioPath:      audioPath,
		Topic:          topic,
		OutDir:         outDir,
		AuditLog:       getenvDefault("SCENESYNC_AUDIT_LOG", cfg.AuditLog),
		WordsPerSecond: wps,
		Logf:           log.Printf,
	}

	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(context.Background(), pcfg)
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
