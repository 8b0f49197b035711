package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const prompt = "> "

var (
	errUnknownCommand = errors.New("unknown command, use: move <0-8>, jump <step>, toggle, quit")
	errBadArgument    = errors.New("expected one number")
)

// Play - runs a terminal game reading commands from in until "quit" or EOF.
func Play(in io.Reader, out io.Writer) error {
	history := tictactoe.NewHistory()
	scanner := bufio.NewScanner(in)

	if err := Render(out, history.View()); err != nil {
		return err
	}

	for {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}

			return nil
		}

		next, quit, err := apply(history, scanner.Text())
		if quit {
			return nil
		}

		if err != nil {
			if _, err = fmt.Fprintf(out, "error: %v\n", err); err != nil {
				return fmt.Errorf("failed to write error: %w", err)
			}

			continue
		}

		history = next

		if err = Render(out, history.View()); err != nil {
			return err
		}
	}
}

func apply(history tictactoe.History, line string) (tictactoe.History, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return history, false, errUnknownCommand
	}

	switch fields[0] {
	case "quit", "exit":
		return history, true, nil
	case "toggle":
		return history.ToggleDisplayOrder(), false, nil
	case "move":
		cell, err := numberArg(fields)
		if err != nil {
			return history, false, err
		}

		next, err := history.PlayMove(cell)

		return next, false, err
	case "jump":
		step, err := numberArg(fields)
		if err != nil {
			return history, false, err
		}

		next, err := history.JumpTo(step)

		return next, false, err
	default:
		return history, false, errUnknownCommand
	}
}

func numberArg(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, errBadArgument
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadArgument, fields[1])
	}

	return n, nil
}
