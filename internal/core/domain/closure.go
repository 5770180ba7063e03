package domain

// Closure computes the set of nodes reachable from seeds by repeatedly
// following the related function. It is a plain worklist traversal: every
// node is marked visited before it is enqueued, so each node is processed at
// most once and the traversal terminates on any finite graph, cycles
// included. The result carries no ordering; callers sort afterwards.
func Closure[T comparable](seeds []T, related func(T) []T) map[T]struct{} {
	visited := make(map[T]struct{}, len(seeds))
	work := make([]T, 0, len(seeds))

	for _, s := range seeds {
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		work = append(work, s)
	}

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		for _, r := range related(n) {
			if _, ok := visited[r]; ok {
				continue
			}
			visited[r] = struct{}{}
			work = append(work, r)
		}
	}

	return visited
}
