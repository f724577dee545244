package model

// Summary counts the outcomes of a run.
type Summary struct {
	// Total is the number of URLs checked.
	Total int

	// Succeeded is the number of 2xx responses.
	Succeeded int

	// HTTPErrors is the number of non-2xx responses.
	HTTPErrors int

	// Failed is the number of URLs that produced no response.
	Failed int
}

// Add records one result.
func (s *Summary) Add(r *CheckResult) {
	s.Total++
	switch {
	case r.Failed():
		s.Failed++
	case r.Success():
		s.Succeeded++
	default:
		s.HTTPErrors++
	}
}
