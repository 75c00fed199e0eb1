package graphnode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// PropertyType is the value type of a slot property.
type PropertyType int

const (
	PropertyBool PropertyType = iota
	PropertyInt
	PropertyColor
	PropertyIcon
)

// String returns the type name.
func (t PropertyType) String() string {
	switch t {
	case PropertyBool:
		return "bool"
	case PropertyInt:
		return "int"
	case PropertyColor:
		return "color"
	case PropertyIcon:
		return "icon"
	default:
		return fmt.Sprintf("PropertyType(%d)", int(t))
	}
}

// PropertyInfo names one persisted slot property.
type PropertyInfo struct {
	Path string
	Type PropertyType
}

// slotFields lists the slot property fields in persisted order.
var slotFields = []struct {
	name string
	typ  PropertyType
}{
	{"left_enabled", PropertyBool},
	{"left_type", PropertyInt},
	{"left_color", PropertyColor},
	{"left_icon", PropertyIcon},
	{"right_enabled", PropertyBool},
	{"right_type", PropertyInt},
	{"right_color", PropertyColor},
	{"right_icon", PropertyIcon},
	{"draw_stylebox", PropertyBool},
}

// PropertyList enumerates the slot properties of every visible child in
// child order.
func (n *GraphNode) PropertyList() []PropertyInfo {
	count := len(n.slotChildren())
	list := make([]PropertyInfo, 0, count*len(slotFields))
	for i := range count {
		for _, f := range slotFields {
			list = append(list, PropertyInfo{Path: slotPath(i, f.name), Type: f.typ})
		}
	}
	return list
}

func slotPath(index int, field string) string {
	return "slot/" + strconv.Itoa(index) + "/" + field
}

// parseSlotPath splits "slot/<index>/<field>". Segments after the field are
// ignored. ok is false when path is not a slot property at all.
func parseSlotPath(path string) (index int, field string, ok bool, err error) {
	rest, found := strings.CutPrefix(path, "slot/")
	if !found {
		return 0, "", false, nil
	}
	idx, tail, found := strings.Cut(rest, "/")
	if !found {
		return 0, "", true, errors.ErrUnknownProperty
	}
	field, _, _ = strings.Cut(tail, "/")
	index, err = strconv.Atoi(idx)
	if err != nil {
		return 0, "", true, errors.ErrUnknownProperty
	}
	return index, field, true, nil
}

// Get reads a slot property. Absent slots read as defaults.
func (n *GraphNode) Get(path string) (any, bool) {
	index, field, ok, err := parseSlotPath(path)
	if !ok || err != nil {
		return nil, false
	}
	s := n.slots.Lookup(index)
	switch field {
	case "left_enabled":
		return s.EnableLeft, true
	case "left_type":
		return s.TypeLeft, true
	case "left_color":
		return s.ColorLeft, true
	case "left_icon":
		return s.IconLeft, true
	case "right_enabled":
		return s.EnableRight, true
	case "right_type":
		return s.TypeRight, true
	case "right_color":
		return s.ColorRight, true
	case "right_icon":
		return s.IconRight, true
	case "draw_stylebox":
		return s.DrawStylebox, true
	}
	return nil, false
}

// Set writes a slot property. It reports false with a nil error when path
// does not name a slot property.
//
// Values are decoded weakly: "true", 1 and 1.0 are all accepted for a
// bool; colors accept hex strings, color names and packed ARGB integers;
// icons accept a texture or a texture name.
func (n *GraphNode) Set(path string, value any) (bool, error) {
	const op = "graphnode.Set"
	index, field, ok, err := parseSlotPath(path)
	if !ok {
		return false, nil
	}
	if err != nil {
		return false, n.fail(op, errors.KindProperty, -1, fmt.Errorf("%w: %s", err, path))
	}
	if index < 0 {
		return false, n.fail(op, errors.KindInvalidIndex, index, errors.ErrNegativeIndex)
	}

	s := n.slots.Lookup(index)
	switch field {
	case "left_enabled":
		err = mapstructure.WeakDecode(value, &s.EnableLeft)
	case "left_type":
		err = mapstructure.WeakDecode(value, &s.TypeLeft)
	case "left_color":
		s.ColorLeft, err = decodeColor(value)
	case "left_icon":
		s.IconLeft, err = n.decodeIcon(value)
	case "right_enabled":
		err = mapstructure.WeakDecode(value, &s.EnableRight)
	case "right_type":
		err = mapstructure.WeakDecode(value, &s.TypeRight)
	case "right_color":
		s.ColorRight, err = decodeColor(value)
	case "right_icon":
		s.IconRight, err = n.decodeIcon(value)
	case "draw_stylebox":
		err = mapstructure.WeakDecode(value, &s.DrawStylebox)
	default:
		return false, n.fail(op, errors.KindProperty, index, fmt.Errorf("%w: %s", errors.ErrUnknownProperty, path))
	}
	if err != nil {
		return false, n.fail(op, errors.KindProperty, index, fmt.Errorf("%w: %s: %v", errors.ErrInvalidValue, path, err))
	}

	n.slots.Put(index, s)
	n.slotChanged(index)
	return true, nil
}

// Properties returns every property of every stored slot, keyed by path.
func (n *GraphNode) Properties() map[string]any {
	props := make(map[string]any)
	for _, index := range n.slots.Indices() {
		for _, f := range slotFields {
			path := slotPath(index, f.name)
			v, _ := n.Get(path)
			if tex, ok := v.(*rendering.Texture); ok {
				if tex == nil {
					continue
				}
				v = tex.Name
			}
			props[path] = v
		}
	}
	return props
}

// ApplyProperties writes props in path order and stops at the first error.
// Paths that are not slot properties are ignored.
func (n *GraphNode) ApplyProperties(props map[string]any) error {
	paths := make([]string, 0, len(props))
	for p := range props {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		if _, err := n.Set(p, props[p]); err != nil {
			return err
		}
	}
	return nil
}

// RegisterIcon makes tex available to icon properties by its name.
func (n *GraphNode) RegisterIcon(tex *rendering.Texture) {
	if tex == nil {
		return
	}
	if n.icons == nil {
		n.icons = make(map[string]*rendering.Texture)
	}
	n.icons[tex.Name] = tex
}

func (n *GraphNode) decodeIcon(value any) (*rendering.Texture, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *rendering.Texture:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		if tex, ok := n.icons[v]; ok {
			return tex, nil
		}
		size := n.Theme.PortIconSize
		tex := rendering.NewTexture(v, size, size)
		n.RegisterIcon(tex)
		return tex, nil
	}
	return nil, fmt.Errorf("cannot use %T as icon", value)
}

func decodeColor(value any) (rendering.Color, error) {
	switch v := value.(type) {
	case rendering.Color:
		return v, nil
	case string:
		return rendering.ParseColor(v)
	}
	var packed uint32
	if err := mapstructure.WeakDecode(value, &packed); err != nil {
		return 0, err
	}
	return rendering.Color(packed), nil
}
