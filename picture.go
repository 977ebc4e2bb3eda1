package starfan

// Picture is an ordered composite of drawables. Insertion order is paint
// order. Children may themselves be pictures.
type Picture struct {
	children []Drawable
}

// NewPicture creates a picture holding children in order.
// Panics if any child is nil.
func NewPicture(children ...Drawable) *Picture {
	p := &Picture{children: make([]Drawable, 0, len(children))}
	for _, c := range children {
		p.Add(c)
	}
	return p
}

// Add appends child. Panics if child is nil or is the picture itself.
func (p *Picture) Add(child Drawable) {
	p.checkChild(child)
	p.children = append(p.children, child)
}

// AddAt inserts child at index.
func (p *Picture) AddAt(child Drawable, index int) {
	p.checkChild(child)
	if index < 0 || index > len(p.children) {
		panic("starfan: child index out of range")
	}
	p.children = append(p.children, nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
}

// Remove detaches child. Returns false if child is not in the picture.
func (p *Picture) Remove(child Drawable) bool {
	for i, c := range p.children {
		if c == child {
			p.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the child at index.
func (p *Picture) RemoveAt(index int) Drawable {
	if index < 0 || index >= len(p.children) {
		panic("starfan: child index out of range")
	}
	child := p.children[index]
	copy(p.children[index:], p.children[index+1:])
	p.children[len(p.children)-1] = nil
	p.children = p.children[:len(p.children)-1]
	return child
}

// Set replaces all children. Panics if any is nil; the picture is left
// unchanged in that case.
func (p *Picture) Set(children []Drawable) {
	for _, c := range children {
		p.checkChild(c)
	}
	next := make([]Drawable, len(children))
	copy(next, children)
	p.children = next
}

// Clear removes all children.
func (p *Picture) Clear() {
	clear(p.children)
	p.children = p.children[:0]
}

// Filter keeps only the children for which keep returns true, preserving
// order, and returns the number removed. Dropped slots are nilled so the
// backing array does not retain them.
func (p *Picture) Filter(keep func(Drawable) bool) int {
	n := 0
	for _, c := range p.children {
		if keep(c) {
			p.children[n] = c
			n++
		}
	}
	removed := len(p.children) - n
	clear(p.children[n:])
	p.children = p.children[:n]
	return removed
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (p *Picture) Children() []Drawable {
	return p.children
}

// Len returns the number of children.
func (p *Picture) Len() int {
	return len(p.children)
}

// At returns the child at index.
func (p *Picture) At(index int) Drawable {
	return p.children[index]
}

func (p *Picture) Draw(s Surface) {
	for _, c := range p.children {
		c.Draw(s)
	}
}

func (p *Picture) DrawWithAffine(m Matrix, s Surface) {
	for _, c := range p.children {
		c.DrawWithAffine(m, s)
	}
}

// Rotate rotates each child about its own center, not about a shared pivot.
func (p *Picture) Rotate(degrees float64) {
	for _, c := range p.children {
		c.Rotate(degrees)
	}
}

func (p *Picture) checkChild(child Drawable) {
	if isNilDrawable(child) {
		panic("starfan: cannot add nil child")
	}
	if pic, ok := child.(*Picture); ok && containsPicture(pic, p) {
		panic("starfan: adding child would create a cycle")
	}
}

// containsPicture reports whether target is root or nested anywhere inside it.
func containsPicture(root, target *Picture) bool {
	if root == target {
		return true
	}
	for _, c := range root.children {
		if pic, ok := c.(*Picture); ok && containsPicture(pic, target) {
			return true
		}
	}
	return false
}

// isNilDrawable catches both a nil interface and a typed nil pointer of the
// package's own drawables.
func isNilDrawable(d Drawable) bool {
	switch v := d.(type) {
	case nil:
		return true
	case *Picture:
		return v == nil
	case *Circle:
		return v == nil
	case *RegularPolygon:
		return v == nil
	case *Star:
		return v == nil
	case *PhysicalStar:
		return v == nil
	case *Flower:
		return v == nil
	case *Fan:
		return v == nil
	case *ToggleButton:
		return v == nil
	case *Composition:
		return v == nil
	}
	return false
}
