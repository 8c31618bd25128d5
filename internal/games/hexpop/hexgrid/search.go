package hexgrid

// Cluster returns the maximal set of active bubbles sharing start's color and
// connected to start through lattice adjacency. The result always begins with
// start and follows breadth-first order.
func (l Layout) Cluster(start *Bubble, lk Lookup) []*Bubble {
	if start == nil {
		return nil
	}

	visited := map[uint64]bool{start.ID: true}
	cluster := []*Bubble{start}
	queue := []*Bubble{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range l.Neighbors(cur.Cell()) {
			nb := lk.At(n)
			if nb == nil || !nb.Active || visited[nb.ID] || nb.Color != start.Color {
				continue
			}
			visited[nb.ID] = true
			cluster = append(cluster, nb)
			queue = append(queue, nb)
		}
	}

	return cluster
}

// Partition splits the field's active bubbles into those connected to row 0
// through any chain of active bubbles (grounded) and the rest (floating).
// Both slices keep the field's row-major order.
func (l Layout) Partition(f *Field) (grounded, floating []*Bubble) {
	all := f.Bubbles()
	reached := make(map[uint64]bool, len(all))

	var queue []*Bubble
	for _, b := range all {
		if b.Row == 0 {
			reached[b.ID] = true
			queue = append(queue, b)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range l.Neighbors(cur.Cell()) {
			nb := f.At(n)
			if nb == nil || reached[nb.ID] {
				continue
			}
			reached[nb.ID] = true
			queue = append(queue, nb)
		}
	}

	for _, b := range all {
		if reached[b.ID] {
			grounded = append(grounded, b)
		} else {
			floating = append(floating, b)
		}
	}
	return grounded, floating
}

// Floating returns the active bubbles with no path back to the ceiling.
// With no bubble on row 0 the whole field floats.
func (l Layout) Floating(f *Field) []*Bubble {
	_, floating := l.Partition(f)
	return floating
}
