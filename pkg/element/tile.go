package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Tile stacks its children along one axis. Each child first receives its
// minimum size; remaining slack is shared in proportion to the stretch
// weights, with children capping out at their maximum released back into
// the pool. Across the axis every child spans the full tile extent.
type Tile struct {
	Composite
	axis    graphics.Axis
	spacing float32
	cache   tileLayout
}

type tileLayout struct {
	valid  bool
	bounds graphics.Rect
	starts []float32
	sizes  []float32
}

// NewVTile returns a tile stacking children top to bottom.
func NewVTile(children ...Element) *Tile {
	t := &Tile{axis: graphics.AxisY}
	t.Init(t, children...)
	return t
}

// NewHTile returns a tile stacking children left to right.
func NewHTile(children ...Element) *Tile {
	t := &Tile{axis: graphics.AxisX}
	t.Init(t, children...)
	return t
}

// Axis returns the stacking axis.
func (t *Tile) Axis() graphics.Axis {
	return t.axis
}

// Spacing returns the gap between adjacent children.
func (t *Tile) Spacing() float32 {
	return t.spacing
}

// SetSpacing sets the gap between adjacent children.
func (t *Tile) SetSpacing(s float32) {
	if s < 0 {
		s = 0
	}
	t.spacing = s
	t.cache.valid = false
}

// Invalidate discards the cached child allocation. Call it after a child
// changes its reported limits without the tile bounds changing; child
// mutations through the tile invalidate on their own.
func (t *Tile) Invalidate() {
	t.cache.valid = false
}

// Add appends children and discards the cached allocation.
func (t *Tile) Add(children ...Element) {
	t.Composite.Add(children...)
	t.cache.valid = false
}

// RemoveAt removes the child at index i and discards the cached
// allocation.
func (t *Tile) RemoveAt(i int) {
	t.Composite.RemoveAt(i)
	t.cache.valid = false
}

// Clear removes all children and discards the cached allocation.
func (t *Tile) Clear() {
	t.Composite.Clear()
	t.cache.valid = false
}

// Limits aggregates the child limits: along the axis minima and maxima
// add up, plus the inter-child spacing; across it the tightest common
// range wins, floored at the largest minimum.
func (t *Tile) Limits(ctx *Context) ViewLimits {
	n := t.ChildCount()
	if n == 0 {
		return ViewLimits{}
	}
	cross := t.axis.Other()
	var mainMin, mainMax float32
	crossMin := float32(0)
	crossMax := graphics.FullExtent
	for i := 0; i < n; i++ {
		cl := t.ChildAt(i).Limits(ctx)
		mainMin += cl.MinAxis(t.axis)
		mainMax += cl.MaxAxis(t.axis)
		if m := cl.MinAxis(cross); m > crossMin {
			crossMin = m
		}
		if m := cl.MaxAxis(cross); m < crossMax {
			crossMax = m
		}
	}
	totalSpacing := t.spacing * float32(n-1)
	mainMin += totalSpacing
	mainMax += totalSpacing
	if mainMax < mainMin {
		mainMax = mainMin
	}
	if crossMax < crossMin {
		crossMax = crossMin
	}
	var l ViewLimits
	l.Min = l.Min.WithAxis(t.axis, mainMin).WithAxis(cross, crossMin)
	l.Max = l.Max.WithAxis(t.axis, mainMax).WithAxis(cross, crossMax)
	return l
}

// BoundsOf returns the rectangle allocated to child i for the tile
// bounds carried by ctx.
func (t *Tile) BoundsOf(ctx *Context, i int) graphics.Rect {
	lay := t.layout(ctx)
	if i < 0 || i >= len(lay.sizes) {
		return graphics.Rect{}
	}
	start := lay.starts[i]
	end := start + lay.sizes[i]
	if t.axis == graphics.AxisX {
		return graphics.Rect{Left: start, Top: ctx.Bounds.Top, Right: end, Bottom: ctx.Bounds.Bottom}
	}
	return graphics.Rect{Left: ctx.Bounds.Left, Top: start, Right: ctx.Bounds.Right, Bottom: end}
}

func (t *Tile) layout(ctx *Context) *tileLayout {
	if t.cache.valid && t.cache.bounds == ctx.Bounds && len(t.cache.sizes) == t.ChildCount() {
		return &t.cache
	}
	t.computeLayout(ctx)
	return &t.cache
}

func (t *Tile) computeLayout(ctx *Context) {
	n := t.ChildCount()
	sizes := make([]float32, n)
	starts := make([]float32, n)
	maxes := make([]float32, n)
	weights := make([]float32, n)
	var totalMin float32
	for i := 0; i < n; i++ {
		child := t.ChildAt(i)
		cl := child.Limits(ctx)
		sizes[i] = cl.MinAxis(t.axis)
		maxes[i] = cl.MaxAxis(t.axis)
		weights[i] = child.Stretch().Axis(t.axis)
		totalMin += sizes[i]
	}
	totalSpacing := t.spacing * float32(max(n-1, 0))
	avail := ctx.Bounds.Extent().Axis(t.axis)
	slack := avail - totalMin - totalSpacing
	if slack > 0 {
		t.distribute(slack, sizes, maxes, weights)
	}
	pos := ctx.Bounds.Left
	if t.axis == graphics.AxisY {
		pos = ctx.Bounds.Top
	}
	for i := 0; i < n; i++ {
		starts[i] = pos
		pos += sizes[i] + t.spacing
	}
	t.cache = tileLayout{valid: true, bounds: ctx.Bounds, starts: starts, sizes: sizes}
}

// distribute shares slack among stretchable children. Children reaching
// their maximum drop out and their unused share returns to the pool, so
// the loop runs at most once per child.
func (t *Tile) distribute(slack float32, sizes, maxes, weights []float32) {
	const eps = 1e-3
	active := make([]int, 0, len(sizes))
	for i := range sizes {
		if weights[i] > 0 && maxes[i]-sizes[i] > 0 {
			active = append(active, i)
		}
	}
	for slack > eps && len(active) > 0 {
		var totalWeight float32
		for _, i := range active {
			totalWeight += weights[i]
		}
		if totalWeight <= 0 {
			return
		}
		var returned float32
		next := active[:0]
		for _, i := range active {
			share := slack * weights[i] / totalWeight
			room := maxes[i] - sizes[i]
			if share >= room {
				sizes[i] = maxes[i]
				returned += share - room
			} else {
				sizes[i] += share
				next = append(next, i)
			}
		}
		if len(next) == len(active) {
			return
		}
		active = next
		slack = returned
	}
}
