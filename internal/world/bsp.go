package world

// bspNode represents a node in the BSP tree. It covers the half-open area
// [x, x+width) x [y, y+height).
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// generateBSP lays out the map with binary space partitioning.
func (b *builder) generateBSP() {
	// The last row and column stay outside every leaf so room walls never
	// reach past the map edge.
	root := &bspNode{
		x:      0,
		y:      0,
		width:  b.m.Width - 1,
		height: b.m.Height - 1,
	}

	b.splitNode(root)
	b.createRooms(root)
	b.connectRooms(root)
}

// minLeafSize is the smallest leaf that still holds a minimum-size room.
func (b *builder) minLeafSize() int {
	return b.cfg.MinRoomSize + 2
}

// splitNode recursively splits a BSP node.
func (b *builder) splitNode(node *bspNode) {
	minLeaf := b.minLeafSize()

	// Stop if too small to split
	if node.width < minLeaf*2 && node.height < minLeaf*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeaf*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeaf*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else {
		splitHorizontally = false
	}

	extent := node.width
	if splitHorizontally {
		extent = node.height
	}
	lo, hi := minLeaf, extent-minLeaf
	if hi < lo {
		return
	}
	b.attempts++
	splitPos := b.randRange(lo, hi)

	// Create child nodes
	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	// Recursively split children
	b.splitNode(node.left)
	b.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree, up to MaxRooms.
func (b *builder) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}

	if len(b.m.Rooms) >= b.cfg.MaxRooms {
		b.rejected++
		return
	}

	// The rectangle, walls included, stays inside the leaf.
	maxW := min(b.cfg.MaxRoomSize, node.width-1)
	maxH := min(b.cfg.MaxRoomSize, node.height-1)
	if maxW < b.cfg.MinRoomSize || maxH < b.cfg.MinRoomSize {
		b.rejected++
		return // Skip if too small
	}
	w := b.randRange(b.cfg.MinRoomSize, maxW)
	h := b.randRange(b.cfg.MinRoomSize, maxH)

	// Random position within leaf
	x := node.x + b.rng.Intn(node.width-w)
	y := node.y + b.rng.Intn(node.height-h)

	room := NewRoom(x, y, w, h)
	node.room = &room
	b.m.Rooms = append(b.m.Rooms, room)
	b.carveRoom(room)
}

// connectRooms joins sibling subtrees with corridors, bottom-up.
func (b *builder) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	// Connect children first
	b.connectRooms(node.left)
	b.connectRooms(node.right)

	leftRoom := roomIn(node.left)
	rightRoom := roomIn(node.right)

	if leftRoom != nil && rightRoom != nil {
		b.carveCorridor(*leftRoom, *rightRoom)
	}
}

// roomIn returns a room from a subtree (any room will do).
func roomIn(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	// Try left subtree first
	if room := roomIn(node.left); room != nil {
		return room
	}
	return roomIn(node.right)
}
