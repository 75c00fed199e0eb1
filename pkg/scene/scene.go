// Package scene loads graph node descriptions from YAML or TOML files.
//
// A scene describes one graph node: its children, slot properties, theme
// and the connections of a static surface around it. It is what the
// nodegraph command operates on.
//
//	version: v1.0.0
//	name: mixer
//	title: Mixer
//	size: {width: 160, height: 120}
//	children:
//	  - {label: in, min: {width: 80, height: 24}}
//	properties:
//	  slot/0/left_enabled: true
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/graphnode"
	"github.com/go-drift/nodegraph/pkg/rendering"
	"github.com/go-drift/nodegraph/pkg/semantics"
	"github.com/go-drift/nodegraph/pkg/theme"
)

// DefaultVersion is assumed when a scene does not declare one.
const DefaultVersion = "v1.0.0"

// supportedMajor is the scene format major version this package reads.
const supportedMajor = "v1"

// Scene is a decoded scene file.
type Scene struct {
	Version           string `yaml:"version" toml:"version"`
	Name              string `yaml:"name" toml:"name"`
	Title             string `yaml:"title" toml:"title"`
	AccessibilityName string `yaml:"accessibility_name" toml:"accessibility_name"`
	// Theme is a theme file path, relative to the scene file.
	Theme string         `yaml:"theme" toml:"theme"`
	Size  rendering.Size `yaml:"size" toml:"size"`

	Selected  bool `yaml:"selected" toml:"selected"`
	Resizable bool `yaml:"resizable" toml:"resizable"`
	// FocusMode is "click", "all" or "accessibility".
	FocusMode string `yaml:"slots_focus_mode" toml:"slots_focus_mode"`
	// Accessibility simulates an active screen reader.
	Accessibility               bool `yaml:"accessibility" toml:"accessibility"`
	IgnoreInvalidConnectionType bool `yaml:"ignore_invalid_connection_type" toml:"ignore_invalid_connection_type"`

	Titlebar *Child  `yaml:"titlebar" toml:"titlebar"`
	Children []Child `yaml:"children" toml:"children"`
	// Properties are slot properties keyed by "slot/<index>/<field>".
	Properties map[string]any `yaml:"properties" toml:"properties"`

	// TypeNames maps port type tags to display names.
	TypeNames   map[string]string `yaml:"type_names" toml:"type_names"`
	Connections []Connection      `yaml:"connections" toml:"connections"`

	dir string
}

// Child describes one child widget.
type Child struct {
	Label  string         `yaml:"label" toml:"label"`
	Min    rendering.Size `yaml:"min" toml:"min"`
	Hidden bool           `yaml:"hidden" toml:"hidden"`
	Expand bool           `yaml:"expand" toml:"expand"`
	Ratio  float64        `yaml:"ratio" toml:"ratio"`
}

// Connection describes what is connected to one port of the node.
type Connection struct {
	Port   int  `yaml:"port" toml:"port"`
	Output bool `yaml:"output" toml:"output"`
	// Target names the element on the other end.
	Target string `yaml:"target" toml:"target"`
	// Description overrides the generated connection summary.
	Description string `yaml:"description" toml:"description"`
}

// Load reads a scene file. The encoding is picked from the extension.
func Load(path string) (*Scene, error) {
	format, err := theme.FormatForPath(path)
	if err != nil {
		return nil, configError("scene.Load", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("scene.Load", fmt.Errorf("failed to read scene %s: %w", path, err))
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes scene data and fills defaults.
func Parse(data []byte, format theme.Format) (*Scene, error) {
	var s Scene
	switch format {
	case theme.FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, configError("scene.Parse", fmt.Errorf("failed to parse scene yaml: %w", err))
		}
	case theme.FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, configError("scene.Parse", fmt.Errorf("failed to parse scene toml: %w", err))
		}
		if undecoded := undecodedOutsideProperties(md.Undecoded()); len(undecoded) > 0 {
			return nil, configError("scene.Parse", fmt.Errorf("unknown scene keys: %v", undecoded))
		}
	default:
		return nil, configError("scene.Parse", fmt.Errorf("unknown scene format %d", format))
	}
	if err := s.normalize(); err != nil {
		return nil, configError("scene.Parse", err)
	}
	return &s, nil
}

// undecodedOutsideProperties drops keys under the free-form properties table.
func undecodedOutsideProperties(keys []toml.Key) []toml.Key {
	var out []toml.Key
	for _, k := range keys {
		if len(k) > 0 && k[0] == "properties" {
			continue
		}
		out = append(out, k)
	}
	return out
}

func (s *Scene) normalize() error {
	if strings.TrimSpace(s.Name) == "" {
		s.Name = uuid.NewString()
	}

	v := strings.TrimSpace(s.Version)
	if v == "" {
		v = DefaultVersion
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid scene version %q", s.Version)
	}
	if major := semver.Major(v); major != supportedMajor {
		return fmt.Errorf("unsupported scene version %s (want %s.x)", v, supportedMajor)
	}
	s.Version = semver.Canonical(v)

	if _, err := s.focusMode(); err != nil {
		return err
	}
	for key := range s.TypeNames {
		if _, err := strconv.Atoi(key); err != nil {
			return fmt.Errorf("type name key %q is not an integer", key)
		}
	}
	return nil
}

func (s *Scene) focusMode() (focus.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s.FocusMode)) {
	case "", "accessibility":
		return focus.ModeAccessibility, nil
	case "all":
		return focus.ModeAll, nil
	case "click":
		return focus.ModeClick, nil
	}
	return focus.ModeNone, fmt.Errorf("unknown slots_focus_mode %q", s.FocusMode)
}

// BuildOptions adjust how Build constructs the node.
type BuildOptions struct {
	// Theme overrides the scene's theme file.
	Theme *theme.GraphNodeThemeData
	// FocusManager owns focus for the node and its children. Nil creates one.
	FocusManager *focus.FocusManager
}

// Build creates the graph node and its static surface, and runs the first
// layout pass.
func (s *Scene) Build(opts BuildOptions) (*graphnode.GraphNode, *Surface, error) {
	th := opts.Theme
	if th == nil && s.Theme != "" {
		path := s.Theme
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		loaded, err := theme.Load(path)
		if err != nil {
			return nil, nil, configError("scene.Build", err)
		}
		th = loaded
	}
	if th == nil {
		th = theme.DefaultGraphNodeTheme()
	}
	manager := opts.FocusManager
	if manager == nil {
		manager = focus.NewFocusManager()
	}

	surface := newSurface(s, manager)
	binding := &semantics.SemanticsBinding{}
	binding.SetEnabled(s.Accessibility)

	nodeOpts := []graphnode.Option{
		graphnode.WithTitle(s.Title),
		graphnode.WithTheme(th),
		graphnode.WithSurface(surface),
		graphnode.WithFocusManager(manager),
		graphnode.WithSemantics(binding),
	}
	if s.Titlebar != nil {
		nodeOpts = append(nodeOpts, graphnode.WithTitlebar(s.Titlebar.box(manager)))
	}
	n := graphnode.New(s.Name, nodeOpts...)
	n.AccessibilityName = s.AccessibilityName
	n.Selected = s.Selected
	n.Resizable = s.Resizable
	n.IgnoreInvalidConnectionType = s.IgnoreInvalidConnectionType

	mode, _ := s.focusMode()
	if err := n.SetSlotsFocusMode(mode); err != nil {
		return nil, nil, err
	}
	for _, c := range s.Children {
		n.AddChild(c.box(manager))
	}
	if err := n.ApplyProperties(s.Properties); err != nil {
		return nil, nil, err
	}

	size := s.Size
	minSize := n.MinimumSize()
	size.Width = max(size.Width, minSize.Width)
	size.Height = max(size.Height, minSize.Height)
	n.Resize(size)
	n.LayoutIfNeeded()
	return n, surface, nil
}

func (c Child) box(manager *focus.FocusManager) *graphnode.Box {
	b := graphnode.NewBox(c.Label, c.Min.Width, c.Min.Height)
	b.Hidden = c.Hidden
	b.Expand = c.Expand
	b.Ratio = c.Ratio
	b.Focus = focus.NewFocusNode(c.Label, manager)
	return b
}

func configError(op string, err error) error {
	return &errors.NodeError{Op: op, Kind: errors.KindConfig, Index: -1, Err: err}
}
