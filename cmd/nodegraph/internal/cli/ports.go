package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodegraph/pkg/graphnode"
)

func newPortsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ports <scene>",
		Short: "Print the input and output port caches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, surface, err := loadNode(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "%s: %d inputs, %d outputs", n.Name, n.InputPortCount(), n.OutputPortCount())
			fmt.Fprintln(w, portsTable(n, surface.TypeNames()))
			return nil
		},
	}
}

func portsTable(n *graphnode.GraphNode, typeNames map[int]string) string {
	var rows [][]string
	add := func(dir string, ports []graphnode.PortCacheEntry) {
		for i, p := range ports {
			typ := strconv.Itoa(p.Type)
			if name, ok := typeNames[p.Type]; ok {
				typ += " (" + name + ")"
			}
			rows = append(rows, []string{
				dir,
				strconv.Itoa(i),
				strconv.Itoa(p.Slot),
				typ,
				p.Color.String(),
				formatFloat(p.Position.X),
				formatFloat(p.Position.Y),
			})
		}
	}
	add("in", n.InputPorts())
	add("out", n.OutputPorts())
	return renderTable([]string{"Dir", "Port", "Slot", "Type", "Color", "X", "Y"}, rows, -1)
}
