// Package cli implements the nodegraph command-line interface.
//
// Every command takes a scene file (see package scene), builds the graph
// node it describes and reports on it:
//   - layout: slot rectangles and centers
//   - ports: the input and output port caches
//   - describe: replay key actions and print the accessibility description
//   - play: drive the node interactively in the terminal
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/graphnode"
	"github.com/go-drift/nodegraph/pkg/scene"
	"github.com/go-drift/nodegraph/pkg/theme"
)

var version = "0.1.0-dev"

type options struct {
	themePath string
	verbose   bool
}

// Execute runs the nodegraph CLI.
func Execute() error {
	return NewRootCommand(os.Stderr).ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree. Diagnostics are logged to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "nodegraph",
		Short:        "Lay out and drive graph nodes from scene files",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			handler := errors.NewLogHandler(logger)
			handler.Verbose = opts.verbose
			errors.SetHandler(handler)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().StringVar(&opts.themePath, "theme", "", "theme file overriding the scene theme (yaml or toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newPortsCmd(opts))
	root.AddCommand(newDescribeCmd(opts))
	root.AddCommand(newPlayCmd(opts))
	return root
}

// loadNode reads a scene file and builds its node.
func loadNode(ctx context.Context, opts *options, path string) (*graphnode.GraphNode, *scene.Surface, error) {
	logger := loggerFromContext(ctx)

	s, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	var build scene.BuildOptions
	if opts.themePath != "" {
		th, err := theme.Load(opts.themePath)
		if err != nil {
			return nil, nil, &errors.NodeError{Op: "cli.loadTheme", Kind: errors.KindConfig, Index: -1, Err: err}
		}
		build.Theme = th
		logger.Debug("theme loaded", "path", opts.themePath)
	}
	n, surface, err := s.Build(build)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("scene built", "path", path, "node", n.Name, "version", s.Version, "slots", n.SlotCount())
	return n, surface, nil
}
