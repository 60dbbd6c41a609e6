/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool

	// logger is replaced in PersistentPreRunE; the interactive view keeps the
	// no-op logger so nothing is written over the terminal UI.
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lemehaute",
	Short: "Plot waves on the Le Méhauté wave-theory applicability diagram",
	Long: `Draws the Le Méhauté diagram, which shows which water-wave theory
(linear, Stokes 2nd to 5th order, cnoidal, solitary) applies to a wave of
depth d, period T and height H, and plots your own waves on it.

Run without arguments to open the interactive terminal view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.HasParent() || cmd == showCmd {
			return nil
		}
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lemehaute.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("curves", "", "boundary curve file (default is the built-in data set)")
	rootCmd.PersistentFlags().String("waves-dir", "", "directory of stored wave samples")
	bindFlags()

	rootCmd.AddCommand(renderCmd, exampleCmd, showCmd, wavesCmd, buoyCmd)
}

// bindFlags maps the global flags onto their config keys.
func bindFlags() {
	_ = viper.BindPFlag("curves.file", rootCmd.PersistentFlags().Lookup("curves"))
	_ = viper.BindPFlag("waves.dir", rootCmd.PersistentFlags().Lookup("waves-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	setDefaults(home)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".lemehaute" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lemehaute")
	}

	viper.SetEnvPrefix("LEMEHAUTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults(home string) {
	viper.SetDefault("figure.width", 12.0)
	viper.SetDefault("figure.height", 8.0)
	viper.SetDefault("figure.dpi", 100)
	viper.SetDefault("legend.loc", "best")
	viper.SetDefault("output", "lemehaute.png")
	viper.SetDefault("waves.dir", filepath.Join(home, ".lemehaute", "waves"))
	viper.SetDefault("buoy.station", "46274")
	viper.SetDefault("buoy.depth", 0.0)
	viper.SetDefault("buoy.base_url", "")
	viper.SetDefault("log.level", "info")
}

// initLogger builds the production zap logger, at debug level with --verbose
// or log.level: debug.
func initLogger() error {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}
