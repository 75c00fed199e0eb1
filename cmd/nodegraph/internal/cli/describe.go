package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodegraph/pkg/focus"
)

func newDescribeCmd(opts *options) *cobra.Command {
	var keys []string
	cmd := &cobra.Command{
		Use:   "describe <scene>",
		Short: "Replay key actions and print the accessibility description",
		Long: `Replay key actions against the node, then print its accessibility
description and the connection requests sent to the surface.

Actions: up, down, left, right, accept, cancel, graph_delete,
graph_follow_left, graph_follow_right.`,
		Example: "  nodegraph describe mixer.yaml --keys down,down,left",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := make([]focus.Action, 0, len(keys))
			for _, k := range keys {
				a, err := focus.ParseAction(strings.TrimSpace(k))
				if err != nil {
					return err
				}
				actions = append(actions, a)
			}

			n, surface, err := loadNode(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			n.RequestFocus()
			for _, a := range actions {
				result := n.HandleKeyEvent(focus.Press(a))
				logger.Debug("key", "action", a, "handled", result == focus.KeyEventHandled, "selected", n.SelectedSlot())
			}

			w := cmd.OutOrStdout()
			config := n.DescribeSemantics()
			printTitle(w, "%s", config.Label)
			fmt.Fprintf(w, "%s %d\n", styleDim.Render("selected slot:"), n.SelectedSlot())
			if focused := surface.Focused(); focused != "" {
				fmt.Fprintf(w, "%s %s\n", styleDim.Render("focus:"), focused)
			}
			for _, line := range surface.Log {
				fmt.Fprintf(w, "%s %s\n", styleDim.Render("surface:"), line)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "comma separated actions to replay")
	return cmd
}
