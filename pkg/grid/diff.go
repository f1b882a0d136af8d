package grid

// Diff describes the minimal set of operations needed to move a grid from
// one track roster to another. Order matters: the final on-screen order is
// exactly the desired order.
type Diff struct {
	// Removed lists IDs present before but absent from the desired roster,
	// in their previous on-screen order. Their surfaces must be detached.
	Removed []string

	// Added lists IDs new to the grid, in desired order. Each needs a
	// fresh surface allocation.
	Added []string

	// Retained lists IDs present in both rosters, in desired order. Their
	// surfaces carry over untouched, which is what prevents visual flicker
	// for unchanged participants.
	Retained []string
}

// Empty reports whether the diff changes nothing structurally. Note that
// an empty diff can still reorder retained tiles.
func (d Diff) Empty() bool {
	return len(d.Removed) == 0 && len(d.Added) == 0
}

// Reconcile diffs the current roster against the desired one.
// Duplicate IDs in desired are collapsed to their first occurrence.
func Reconcile(current, desired []string) Diff {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	desiredSet := make(map[string]bool, len(desired))
	var diff Diff
	for _, id := range desired {
		if desiredSet[id] {
			continue
		}
		desiredSet[id] = true
		if currentSet[id] {
			diff.Retained = append(diff.Retained, id)
		} else {
			diff.Added = append(diff.Added, id)
		}
	}

	for _, id := range current {
		if !desiredSet[id] {
			diff.Removed = append(diff.Removed, id)
		}
	}

	return diff
}
