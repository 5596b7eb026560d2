package rules

// ApplyConwayRules decides whether a cell is alive in the next generation.
// Three live neighbors always yield a live cell; two keep a live cell alive.
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch neighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}
