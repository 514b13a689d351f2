package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yourusername/winpos/internal/config"
	"github.com/yourusername/winpos/internal/logging"
	"github.com/yourusername/winpos/internal/output"
	"github.com/yourusername/winpos/internal/positioner"
	"github.com/yourusername/winpos/internal/types"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Color functions
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
	keyColor   = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "winpos",
	Short: "Query and reposition windows of running processes",
	Long: `Winpos resolves processes by name pattern or PID and reads or moves
their top-level windows.

Geometry fields left unspecified keep the window's current value, so a
bare position change preserves the size and vice versa.`,
	Version: "0.1.0",
}

// Selector flags, shared by set and get
var (
	selName string
	selPID  uint32
)

// set flags
var (
	setX, setY          int32
	setWidth, setHeight int32
	setPassthrough      bool
	setProfile          string
)

// setCmd moves/resizes the windows of matching processes
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Move and/or resize the windows of matching processes",
	Long: `Moves and/or resizes the main window of every process matched by
--name (wildcard pattern) or --pid. Specify any combination of --x, --y,
--width, --height; unspecified fields keep the window's current value.

By default nothing is printed. With --passthrough, a result record is
emitted per moved window, plus a warning when a window appears minimized
or when the selector matched no process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags(cmd)
		if err != nil {
			printError(err.Error())
			return err
		}

		geom, err := geometryFromFlags(cmd)
		if err != nil {
			printError(err.Error())
			return err
		}

		rep, err := positioner.New().Apply(positioner.Options{
			Selector:    sel,
			Geometry:    geom,
			Passthrough: setPassthrough,
		})
		if err != nil {
			printError(fmt.Sprintf("Failed to position windows: %v", err))
			return err
		}

		if !setPassthrough {
			return nil
		}
		return printReport(rep)
	},
}

// getCmd reports current window rectangles without moving anything
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current window rectangles of matching processes",
	Long: `Resolves processes by --name or --pid and prints each matched
window's current position and size without moving it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags(cmd)
		if err != nil {
			printError(err.Error())
			return err
		}

		rep, err := positioner.New().Inspect(sel)
		if err != nil {
			printError(fmt.Sprintf("Failed to query windows: %v", err))
			return err
		}
		return printReport(rep)
	},
}

// listCmd lists every process owning a visible top-level window
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all processes with a visible top-level window",
	Long:  `Lists every process that owns a visible top-level window, with its window's position and size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := positioner.New().Inspect(types.ByName("*"))
		if err != nil {
			printError(fmt.Sprintf("Failed to list windows: %v", err))
			return err
		}
		return printReport(rep)
	},
}

// profilesCmd lists the geometry profiles from the config file
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured geometry profiles",
	Long:  `Lists the named geometry profiles defined in the config file, usable via 'set --profile'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			printError(fmt.Sprintf("Failed to load config: %v", err))
			return err
		}

		if len(cfg.Profiles) == 0 {
			fmt.Println("No profiles configured")
			fmt.Printf("Config path: %s\n", config.GetConfigPath())
			return nil
		}

		if jsonOutput {
			return printJSON(cfg.Profiles)
		}

		for _, p := range cfg.Profiles {
			keyColor.Printf("%s: ", p.ID)
			fmt.Println(formatProfile(p))
		}
		return nil
	},
}

// selectorFromFlags builds the process selector, rejecting the ambiguous
// case of both --name and --pid before any process lookup happens.
func selectorFromFlags(cmd *cobra.Command) (types.Selector, error) {
	nameSet := cmd.Flags().Changed("name")
	pidSet := cmd.Flags().Changed("pid")

	if nameSet && pidSet {
		return types.Selector{}, fmt.Errorf("--name and --pid are mutually exclusive")
	}
	if pidSet {
		return types.ByPID(selPID), nil
	}
	return types.ByName(selName), nil
}

// geometryFromFlags merges an optional profile with the explicit geometry
// flags. Explicit flags win over profile fields. Only flags the caller
// actually passed count as supplied; a zero value is a real coordinate.
func geometryFromFlags(cmd *cobra.Command) (types.Geometry, error) {
	var geom types.Geometry

	if setProfile != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return types.Geometry{}, fmt.Errorf("failed to load config: %v", err)
		}
		profile, err := cfg.GetProfile(setProfile)
		if err != nil {
			return types.Geometry{}, err
		}
		geom = profile.Geometry()
	}

	if cmd.Flags().Changed("x") {
		v := setX
		geom.X = &v
	}
	if cmd.Flags().Changed("y") {
		v := setY
		geom.Y = &v
	}
	if cmd.Flags().Changed("width") {
		v := setWidth
		geom.Width = &v
	}
	if cmd.Flags().Changed("height") {
		v := setHeight
		geom.Height = &v
	}

	return geom, nil
}

// printReport prints warnings to stderr and results to stdout
func printReport(rep *positioner.Report) error {
	if jsonOutput {
		return printJSON(rep)
	}

	for _, w := range rep.Warnings {
		if noColor {
			fmt.Fprintln(os.Stderr, "Warning:", w)
		} else {
			warnColor.Fprint(os.Stderr, "⚠ Warning: ")
			fmt.Fprintln(os.Stderr, w)
		}
	}

	if len(rep.Results) == 0 {
		return nil
	}

	output.PrintResultsTable(rep.Results)
	fmt.Printf("\nTotal: %d windows\n", len(rep.Results))
	return nil
}

func formatProfile(p config.ProfileConfig) string {
	part := func(label string, v *int32) string {
		if v == nil {
			return label + "=keep"
		}
		return fmt.Sprintf("%s=%d", label, *v)
	}
	return fmt.Sprintf("%s %s %s %s",
		part("x", p.X), part("y", p.Y), part("width", p.Width), part("height", p.Height))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/winpos/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Selector flags
	for _, cmd := range []*cobra.Command{setCmd, getCmd} {
		cmd.Flags().StringVar(&selName, "name", "*", "Process name pattern (wildcards * and ?)")
		cmd.Flags().Uint32Var(&selPID, "pid", 0, "Process ID (mutually exclusive with --name)")
	}

	// Geometry flags
	setCmd.Flags().Int32Var(&setX, "x", 0, "Window left position (optional)")
	setCmd.Flags().Int32Var(&setY, "y", 0, "Window top position (optional)")
	setCmd.Flags().Int32Var(&setWidth, "width", 0, "Window width in pixels (optional)")
	setCmd.Flags().Int32Var(&setHeight, "height", 0, "Window height in pixels (optional)")
	setCmd.Flags().BoolVar(&setPassthrough, "passthrough", false, "Emit a result record per moved window")
	setCmd.Flags().StringVar(&setProfile, "profile", "", "Apply a named geometry profile from the config file")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profilesCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		} else if cfg, err := config.LoadConfig(configPath); err == nil {
			logging.SetLevel(cfg.Settings.LogLevel)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init()
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
