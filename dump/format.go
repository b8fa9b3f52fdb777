package dump

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/suveshpratapa/tlv8/profile"
)

// hexPreviewLimit caps how many content bytes a single line shows.
const hexPreviewLimit = 32

// Render writes an indented text rendering of the forest. When prof is
// non-nil, tag names and value types come from the profile starting at the
// root context; unknown tags fall back to heuristics.
func Render(w io.Writer, nodes []*Node, prof *profile.Profile) error {
	return render(w, nodes, prof, profile.RootContext, 0)
}

// RenderContext is Render starting from a named profile context instead of
// the root context.
func RenderContext(w io.Writer, nodes []*Node, prof *profile.Profile, ctx string) error {
	return render(w, nodes, prof, ctx, 0)
}

// Describe returns a one-line description of n within ctx: the profile name
// for the tag (empty when unknown), the rendered value, and the context
// that applies to the node's children.
func Describe(n *Node, prof *profile.Profile, ctx string) (name, value, childCtx string) {
	entry, known := prof.Lookup(ctx, n.Tag)
	if known {
		name = entry.Name
	}
	childCtx = ctx
	if known && entry.Type == profile.TypeContainer {
		childCtx = entry.Context
	}
	if asContainer(n, entry, known) {
		value = fmt.Sprintf("(%d bytes, %d elements)", len(n.Raw), len(n.Children))
	} else {
		value = formatValue(n, entry, known)
	}
	return name, value, childCtx
}

func render(w io.Writer, nodes []*Node, prof *profile.Profile, ctx string, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		entry, known := prof.Lookup(ctx, n.Tag)
		label := fmt.Sprintf("%3d", n.Tag)
		if known && entry.Name != "" {
			label += " " + entry.Name
		}

		if asContainer(n, entry, known) {
			if _, err := fmt.Fprintf(w, "%s%s (%d bytes, %d elements)\n",
				indent, label, len(n.Raw), len(n.Children)); err != nil {
				return err
			}
			childCtx := ctx
			if known {
				childCtx = entry.Context
			}
			if err := render(w, n.Children, prof, childCtx, depth+1); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s%s (%d bytes) %s\n",
			indent, label, len(n.Raw), formatValue(n, entry, known)); err != nil {
			return err
		}
	}
	return nil
}

// asContainer decides whether to render a node's children. A profile entry
// is authoritative either way; without one the nesting heuristic decides.
func asContainer(n *Node, entry profile.Entry, known bool) bool {
	if known {
		return entry.Type == profile.TypeContainer && len(n.Children) > 0
	}
	return len(n.Children) > 0
}

func formatValue(n *Node, entry profile.Entry, known bool) string {
	raw := n.Raw
	if len(raw) == 0 {
		return "empty"
	}
	if known {
		switch entry.Type {
		case profile.TypeUint:
			if v, ok := decodeUint(raw); ok {
				return fmt.Sprintf("= %d", v)
			}
		case profile.TypeInt:
			if v, ok := decodeUint(raw); ok {
				return fmt.Sprintf("= %d", signExtend(v, len(raw)))
			}
		case profile.TypeBool:
			if len(raw) == 1 {
				return fmt.Sprintf("= %v", raw[0] != 0)
			}
		case profile.TypeFloat:
			switch len(raw) {
			case 4:
				return fmt.Sprintf("= %g", math.Float32frombits(binary.LittleEndian.Uint32(raw)))
			case 8:
				return fmt.Sprintf("= %g", math.Float64frombits(binary.LittleEndian.Uint64(raw)))
			}
		case profile.TypeString:
			return fmt.Sprintf("= %q", raw)
		case profile.TypeBytes:
			return hexPreview(raw)
		case profile.TypeContainer:
			// Declared nested but the content did not parse; show hex.
			return hexPreview(raw)
		}
		// Declared type does not fit the observed length.
		return fmt.Sprintf("(not a %s) %s", entry.Type, hexPreview(raw))
	}

	if printable(raw) {
		return fmt.Sprintf("= %q", raw)
	}
	if v, ok := decodeUint(raw); ok {
		return fmt.Sprintf("= %d (%#x)", v, v)
	}
	return hexPreview(raw)
}

func decodeUint(raw []byte) (uint64, bool) {
	switch len(raw) {
	case 1:
		return uint64(raw[0]), true
	case 2:
		return uint64(binary.LittleEndian.Uint16(raw)), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(raw)), true
	case 8:
		return binary.LittleEndian.Uint64(raw), true
	}
	return 0, false
}

func signExtend(v uint64, width int) int64 {
	shift := uint(64 - 8*width)
	return int64(v<<shift) >> shift
}

func printable(raw []byte) bool {
	for _, b := range raw {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

func hexPreview(raw []byte) string {
	if len(raw) <= hexPreviewLimit {
		return hex.EncodeToString(raw)
	}
	return hex.EncodeToString(raw[:hexPreviewLimit]) + fmt.Sprintf("... (%d more bytes)", len(raw)-hexPreviewLimit)
}
