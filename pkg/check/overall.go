package check

// Overall folds results into the aggregate status: the logical AND of every
// result that was not skipped. An empty slice is OK.
func Overall(results []Result) bool {
	ok := true
	for _, r := range results {
		if r.Skipped() {
			continue
		}
		ok = ok && r.OK()
	}
	return ok
}

// Count returns how many results have the given status.
func Count(results []Result, status Status) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}
