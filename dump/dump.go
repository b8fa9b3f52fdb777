package dump

import (
	stderrors "errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/suveshpratapa/tlv8"
	"github.com/suveshpratapa/tlv8/errors"
)

// Node is one logical TLV8 element with its coalesced content. Children is
// populated when the content itself parses as a TLV8 stream.
type Node struct {
	Tag      uint8
	Raw      []byte
	Children []*Node
}

// maxDepth bounds recursion on hostile inputs. Real streams nest a handful
// of levels at most.
const maxDepth = 64

// Tree parses data into a forest of nodes. Element content is duplicated
// out of the input, so the returned nodes do not alias data. Nesting is
// heuristic: any content that a fresh reader consumes cleanly as at least
// one element is treated as a nested stream. Use a profile at render time
// to override the guess for known tags.
func Tree(data []byte) ([]*Node, error) {
	return tree(data, nil)
}

func tree(data []byte, path []string) ([]*Node, error) {
	if len(path) >= maxDepth {
		return nil, errors.InvalidData(errors.PhaseParse, path, "nesting too deep")
	}
	r := tlv8.NewReader(data)
	var nodes []*Node
	for {
		err := r.Next()
		if stderrors.Is(err, tlv8.ErrEndOfStream) {
			return nodes, nil
		}
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindTruncated).
				Path(path...).Cause(err).Detail("frame element").Build()
		}
		raw, err := r.DupBytes()
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindAllocation).
				Path(path...).Cause(err).Detail("copy element content").Build()
		}
		n := &Node{Tag: r.Tag(), Raw: raw}
		if len(raw) >= 2 {
			childPath := append(append([]string(nil), path...), strconv.Itoa(int(n.Tag)))
			kids, kerr := tree(raw, childPath)
			if kerr == nil && len(kids) > 0 {
				n.Children = kids
			} else if kerr != nil {
				Logger().Debug("content is not a nested stream",
					zap.Uint8("tag", n.Tag),
					zap.Int("length", len(raw)))
			}
		}
		nodes = append(nodes, n)
	}
}

// Count returns the total number of nodes in the forest, nested included.
func Count(nodes []*Node) int {
	n := 0
	for _, node := range nodes {
		n += 1 + Count(node.Children)
	}
	return n
}
