package domain

// OrderUpdate assigns a new 0-based position to one item of a reordered group.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ComputeOrderUpdates takes the currently displayed id sequence, the dragged
// item and the item it was dropped on, and returns one update per item so that
// the group's order values become exactly 0..n-1. It returns nil when either
// id is absent or the move is a no-op; per the drag-and-drop contract this is
// silent, not an error.
//
// The move uses remove-then-reinsert semantics, not a swap, so every item
// between the old and new position shifts by one.
func ComputeOrderUpdates(ids []string, activeID, overID string) []OrderUpdate {
	oldIndex := indexOf(ids, activeID)
	newIndex := indexOf(ids, overID)
	if oldIndex == -1 || newIndex == -1 || oldIndex == newIndex {
		return nil
	}

	moved := make([]string, 0, len(ids))
	moved = append(moved, ids[:oldIndex]...)
	moved = append(moved, ids[oldIndex+1:]...)
	moved = append(moved[:newIndex], append([]string{activeID}, moved[newIndex:]...)...)

	// Every item gets an instruction, even those whose position is unchanged;
	// the engine does not diff against previous order values.
	updates := make([]OrderUpdate, len(moved))
	for i, id := range moved {
		updates[i] = OrderUpdate{ID: id, Order: i}
	}
	return updates
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
