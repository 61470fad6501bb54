package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyloom-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Surveyloom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("max_missing_per_subject: %d\n", cfg.MaxMissingPerSubject)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("color: %t\n", cfg.Color)
		fmt.Printf("preview_rows: %d\n", cfg.PreviewRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "max_missing_per_subject":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			cfg.MaxMissingPerSubject = n
		case "log_level":
			switch val {
			case "debug", "info", "warn", "error", "off":
				cfg.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s", val)
			}
		case "color":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid color: %s", val)
			}
			cfg.Color = b
		case "preview_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			cfg.PreviewRows = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
