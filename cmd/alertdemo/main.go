// Command alertdemo presents an alert or action sheet in the terminal.
// Click or drag across the actions with the mouse; press enter to present
// again, esc to dismiss and q to quit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agiangrant/alertsheet"
	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/presentation"
	"github.com/agiangrant/alertsheet/retained"
)

// Version is set at build time
var Version = "dev"

type options struct {
	stylePath  string
	sheet      bool
	blur       bool
	title      string
	message    string
	actions    []string
	tapOutside bool
	noDrag     bool
	logPath    string
	safeBottom float32
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:     "alertdemo",
		Short:   "Present a styleable alert or action sheet in the terminal",
		Version: Version,
		Long: `alertdemo hosts an alert controller in a full-screen terminal program.

Actions are given as "Title" or "Title:style" where style is normal,
preferred or destructive. In an action sheet the preferred action (or the
first one) moves to the detached cancel block.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.stylePath, "style", "", "TOML visual style file")
	f.BoolVar(&opts.sheet, "sheet", false, "present as an action sheet")
	f.BoolVar(&opts.blur, "blur", false, "use blurred backgrounds")
	f.StringVarP(&opts.title, "title", "t", "Warning", "alert title")
	f.StringVarP(&opts.message, "message", "m", "", "alert message")
	f.StringSliceVarP(&opts.actions, "action", "a", []string{"OK:preferred", "Delete:destructive"}, "actions (Title[:style])")
	f.BoolVar(&opts.tapOutside, "tap-outside", false, "dismiss when the backdrop is clicked")
	f.BoolVar(&opts.noDrag, "no-drag", false, "disable drag-to-select")
	f.StringVar(&opts.logPath, "log", "", "write debug logs to this file")
	f.Float32Var(&opts.safeBottom, "safe-bottom", 0, "bottom safe area inset in points")
	return cmd
}

func run(opts *options) error {
	if err := setupLogging(opts.logPath); err != nil {
		return err
	}

	style, err := loadStyle(opts)
	if err != nil {
		return err
	}
	actions, err := parseActions(opts.actions)
	if err != nil {
		return err
	}

	behaviors := alert.BehaviorDragTap
	if opts.noDrag {
		behaviors = 0
	}
	if opts.tapOutside {
		behaviors |= alert.BehaviorTapOutsideToDismiss
	}

	m := newModel(style, opts.title, opts.message, actions, behaviors, opts.safeBottom)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if fm, ok := final.(*model); ok && fm.selected != "" {
		fmt.Printf("selected: %s\n", fm.selected)
	}
	return nil
}

func setupLogging(path string) error {
	var w io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	retained.SetLogger(logger)
	alert.SetLogger(logger)
	presentation.SetLogger(logger)
	return nil
}

func loadStyle(opts *options) (alert.VisualStyle, error) {
	kind := alert.KindAlert
	if opts.sheet {
		kind = alert.KindActionSheet
	}
	style := alert.DefaultVisualStyle(kind)
	if opts.stylePath != "" {
		loaded, err := alertsheet.LoadVisualStyle(opts.stylePath)
		if err != nil {
			return style, err
		}
		style = loaded
		if opts.sheet {
			style.Kind = alert.KindActionSheet
		}
	}
	if opts.blur {
		style.BlurEnable = true
	}
	return style, nil
}

func parseActions(specs []string) ([]*alert.Action, error) {
	actions := make([]*alert.Action, 0, len(specs))
	for _, spec := range specs {
		title, styleName, _ := strings.Cut(spec, ":")
		var s alert.ActionStyle
		switch strings.ToLower(styleName) {
		case "", "normal":
			s = alert.ActionNormal
		case "preferred", "cancel":
			s = alert.ActionPreferred
		case "destructive":
			s = alert.ActionDestructive
		default:
			return nil, fmt.Errorf("unknown action style %q in %q", styleName, spec)
		}
		actions = append(actions, alert.NewAction(title, s, nil))
	}
	return actions, nil
}
