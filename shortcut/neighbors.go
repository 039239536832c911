package shortcut

// Neighbors returns the zero-based nodes reachable from u in one move:
// u-1 and u+1 when they exist, and shortcuts[u]-1 when it is a different,
// in-range node. The result is deduplicated and sorted ascending.
// A u outside [0, n-1] (or beyond the map) has no neighbours.
func Neighbors(u, n int, shortcuts []int) []int {
	if u < 0 || u >= n || u >= len(shortcuts) {
		return nil
	}

	out := make([]int, 0, 3)
	if u > 0 {
		out = append(out, u-1)
	}
	if u < n-1 {
		out = append(out, u+1)
	}

	t, ok := target(u, n, shortcuts)
	if !ok {
		return out
	}
	// left and right are already ordered; place t among them without duplicating.
	for i, v := range out {
		if v == t {
			return out
		}
		if t < v {
			out = append(out, 0)
			copy(out[i+1:], out[i:])
			out[i] = t
			return out
		}
	}

	return append(out, t)
}

// target resolves the zero-based shortcut target of u.
// ok is false for self-shortcuts and values outside [1, n].
func target(u, n int, shortcuts []int) (int, bool) {
	t := shortcuts[u] - 1
	if t == u || t < 0 || t >= n {
		return 0, false
	}

	return t, true
}

// inRange reports whether a raw 1-based shortcut value names an intersection.
func inRange(v, n int) bool {
	return v >= 1 && v <= n
}
