package display

import (
	"bufio"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// RunTUI starts the session and runs the full-screen interface until the
// user quits or ctx is cancelled. The session is ended on return.
func RunTUI(ctx context.Context, ctrl *Controller, logger *log.Logger, opts ...tea.ProgramOption) error {
	intro, err := ctrl.Start()
	if err != nil {
		return err
	}
	defer closeSession(ctrl, logger)

	model := NewTUIModel(ctx, ctrl, intro)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)

	logger.Debug("Starting TUI")
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// RunPlain plays a session line by line, reading commands from in and writing
// to out. It returns when the user quits, in is exhausted or ctx is
// cancelled.
func RunPlain(ctx context.Context, ctrl *Controller, in io.Reader, out io.Writer, logger *log.Logger) error {
	intro, err := ctrl.Start()
	if err != nil {
		return err
	}
	defer closeSession(ctrl, logger)

	if err := writeLines(out, intro); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			if err := writeLines(out, []string{ctrl.styles.Error.Render(err.Error())}); err != nil {
				return err
			}
			continue
		}
		if cmd.Kind == CmdQuit {
			return nil
		}

		if err := writeLines(out, ctrl.Execute(ctx, cmd)); err != nil {
			return err
		}
		if ctrl.Done() {
			return nil
		}
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func closeSession(ctrl *Controller, logger *log.Logger) {
	if err := ctrl.Close(); err != nil {
		logger.Warn("Failed to end session", "error", err)
	}
}
