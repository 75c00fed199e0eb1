package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodegraph/pkg/graphnode"
)

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <scene>",
		Short: "Print slot rectangles and centers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, err := loadNode(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			size := n.Size()
			printTitle(w, "%s (%s) %sx%s", n.Name, n.Title(), formatFloat(size.Width), formatFloat(size.Height))
			fmt.Fprintln(w, layoutTable(n))
			return nil
		},
	}
}

func layoutTable(n *graphnode.GraphNode) string {
	centers := n.SlotCenters()
	var rows [][]string
	for i, c := range slotChildren(n) {
		r := c.Rect()
		center := ""
		if i < len(centers) {
			center = strconv.Itoa(centers[i])
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			childLabel(c, i),
			formatFloat(r.Left),
			formatFloat(r.Top),
			formatFloat(r.Width()),
			formatFloat(r.Height()),
			center,
		})
	}
	return renderTable([]string{"Slot", "Child", "X", "Y", "Width", "Height", "Center"}, rows, n.SelectedSlot())
}
