package two

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/gogpu/two/backend"
)

// renderDepth hands out default z-indices: 0, -1, -2, ... in creation
// order, so shapes made later draw on top.
var renderDepth atomic.Int64

func nextRenderDepth() int {
	return int(renderDepth.Add(-1) + 1)
}

type drawEntry struct {
	z    int
	item backend.Item
}

// collector gathers draw items from a scene walk.
type collector struct {
	entries []drawEntry
}

func (c *collector) reset() {
	clear(c.entries)
	c.entries = c.entries[:0]
}

func (c *collector) add(z int, it backend.Item) {
	c.entries = append(c.entries, drawEntry{z: z, item: it})
}

// flush sorts by depth, greatest first, keeping scene order among equal
// depths, and writes the items to f.
func (c *collector) flush(f *backend.Frame) {
	slices.SortStableFunc(c.entries, func(a, b drawEntry) int {
		return cmp.Compare(b.z, a.z)
	})
	f.Reset()
	for _, e := range c.entries {
		f.Items = append(f.Items, e.item)
	}
}
