package compiler

// Edge is a child to direct supertype link.
type Edge struct {
	Child  string
	Parent string
}

// Ordering is the result of TopologicalSort.
type Ordering struct {
	// Order holds every input resource exactly once.
	Order []string
	// Cyclic is set when some resources could not be placed by the
	// dependency pass and were appended in input order.
	Cyclic bool
	// Correct counts links whose parent precedes its child.
	Correct int
	// Incorrect lists links whose parent does not precede its child.
	Incorrect []Edge
	// Reordered lists correct links whose parent followed its child in the
	// input.
	Reordered []Edge
}

// Total returns the number of in-set links checked.
func (o Ordering) Total() int {
	return o.Correct + len(o.Incorrect)
}

// Positions maps each resource to its index in Order.
func (o Ordering) Positions() map[string]int {
	pos := make(map[string]int, len(o.Order))
	for i, r := range o.Order {
		pos[r] = i
	}
	return pos
}

// TopologicalSort orders resources so that every supertype precedes its
// subtypes. Only links where both ends are in resources are considered.
//
// The sort is Kahn's algorithm with a FIFO queue seeded in input order, so
// the result is stable. Resources left over because of a cycle are appended
// in input order; the links they break are reported in Incorrect.
func TopologicalSort(resources []string, subclassOf map[string]string) Ordering {
	inSet := make(map[string]bool, len(resources))
	unique := make([]string, 0, len(resources))
	for _, r := range resources {
		if !inSet[r] {
			inSet[r] = true
			unique = append(unique, r)
		}
	}

	inDegree := make(map[string]int, len(unique))
	children := make(map[string][]string)
	for _, r := range unique {
		p, ok := subclassOf[r]
		if !ok || !inSet[p] {
			continue
		}
		inDegree[r]++
		children[p] = append(children[p], r)
	}

	queue := make([]string, 0, len(unique))
	for _, r := range unique {
		if inDegree[r] == 0 {
			queue = append(queue, r)
		}
	}

	order := make([]string, 0, len(unique))
	placed := make(map[string]bool, len(unique))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		placed[cur] = true
		for _, c := range children[cur] {
			inDegree[c]--
			if inDegree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}

	result := Ordering{}
	if len(order) < len(unique) {
		result.Cyclic = true
		for _, r := range unique {
			if !placed[r] {
				order = append(order, r)
			}
		}
	}
	result.Order = order

	input := make(map[string]int, len(unique))
	for i, r := range unique {
		input[r] = i
	}
	pos := result.Positions()
	for _, r := range unique {
		p, ok := subclassOf[r]
		if !ok || !inSet[p] {
			continue
		}
		if pos[p] < pos[r] {
			result.Correct++
			if input[p] > input[r] {
				result.Reordered = append(result.Reordered, Edge{Child: r, Parent: p})
			}
		} else {
			result.Incorrect = append(result.Incorrect, Edge{Child: r, Parent: p})
		}
	}
	return result
}
