package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samdwyer/stancewalk/internal/entity"
	"github.com/samdwyer/stancewalk/internal/game"
	"github.com/samdwyer/stancewalk/internal/telemetry"
)

var replayTrace bool

var replayCmd = &cobra.Command{
	Use:   "replay <keys>",
	Short: "Apply a key sequence headlessly and print the final state",
	Long: `Feed each character of <keys> to a fresh character as if it were typed,
then print the resulting state as JSON. Unbound characters are ignored.

Example:
  stancewalk replay xxxww`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replay(cmd, args[0], replayTrace, cmd.OutOrStdout())
	},
}

func init() {
	replayCmd.Flags().BoolVar(&replayTrace, "trace", false, "print the state after every key")
}

// replay runs keys through a controller and writes the final snapshot, or
// every intermediate one when trace is set.
func replay(cmd *cobra.Command, keys string, trace bool, w io.Writer) error {
	ctx := cmd.Context()

	var steps []entity.Character
	controller := game.NewController(
		game.WithTracer(telemetry.NoopTracer()),
		game.WithObserver(func(c entity.Character) {
			steps = append(steps, c)
		}),
	)

	for _, key := range keys {
		controller.Dispatch(ctx, key)
	}

	if trace {
		for i, key := range []rune(keys) {
			line, err := json.Marshal(steps[i])
			if err != nil {
				return fmt.Errorf("encode step %d: %w", i, err)
			}
			fmt.Fprintf(w, "%q -> %s\n", key, line)
		}
	}

	out, err := json.MarshalIndent(controller.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
