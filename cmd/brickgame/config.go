package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset are applied. The output is valid
YAML and can be saved as ~/.brickgame/configs/tetris.yaml.

Examples:
  brickgame config
  brickgame config --difficulty easy > ~/.brickgame/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fail("%v", err)
	}
}

// loadConfig resolves the config file and applies the --difficulty preset.
// The flag wins over the preset named in the file.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := string(cfg.Difficulty.Preset)
	if flagDifficulty != "" {
		name = flagDifficulty
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	return cfg, nil
}
