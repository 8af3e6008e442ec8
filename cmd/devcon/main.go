// Package main provides the devcon CLI application entry point. devcon is
// a small demonstration host for the devconsole engine: it registers a set
// of example bindings and drives the executor from an interactive readline
// loop.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devconsole/internal/convert"
	"devconsole/internal/executor"
	"devconsole/internal/logger"
	"devconsole/internal/output"
	"devconsole/internal/registry"
)

var (
	logLevel string
	logFile  string
	seedPath string
	version  = "0.1.0" // This could be set at build time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devcon",
	Short: "devcon - in-process developer command console",
	Long: `devcon hosts the devconsole engine in a terminal: registered variables
can be read and assigned, registered functions invoked, and partially typed
names completed with fuzzy-ranked suggestions.`,
	Run: runConsole,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("devcon v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")
	rootCmd.Flags().StringVar(&seedPath, "seed", "", "YAML file with initial variable values")
	rootCmd.AddCommand(versionCmd)

	viper.SetEnvPrefix("DEVCON")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
}

func main() {
	// Optional .env for DEVCON_* settings; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runConsole(_ *cobra.Command, _ []string) {
	if err := logger.Configure(viper.GetString("log_level"), viper.GetString("log_file")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	broker := output.NewBroker()
	printer := output.NewPrinter()
	broker.SubscribeResult(printer.Println)
	broker.SubscribeText(printer.Println)

	conv := convert.NewRegistry(broker.Text)
	reg := registry.New()
	exec := executor.New(reg, conv, broker)

	world := newDemoWorld()
	if err := world.register(reg, conv, exec, broker); err != nil {
		logger.Error("binding registration failed", "error", err)
		os.Exit(1)
	}

	if path := viper.GetString("seed"); path != "" {
		if err := applySeed(path, reg, conv); err != nil {
			logger.Error("seed file not applied", "error", err)
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(exec.Completions)

	historyPath := historyFilePath()
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Printf("devcon v%s — %d bindings registered, type 'help' for a list\n", version, reg.Len())

	for !world.quit {
		input, err := line.Prompt("> ")
		if err != nil {
			// io.EOF or Ctrl-C both end the session.
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		exec.Execute(input)
	}

	if f, err := os.Create(historyPath); err == nil {
		_, _ = line.WriteHistory(f)
		_ = f.Close()
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".devcon_history")
	}
	return filepath.Join(home, ".devcon_history")
}
