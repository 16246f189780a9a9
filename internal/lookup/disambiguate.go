package lookup

// Disambiguate picks at most one candidate. Zero or one candidates are
// returned as-is. With two or more, only candidates whose live flavour equals
// wantsLive survive and the first survivor in catalog order wins; when none
// survive there is no selection.
func Disambiguate(candidates []Candidate, wantsLive bool) (Candidate, bool) {
	switch len(candidates) {
	case 0:
		return Candidate{}, false
	case 1:
		return candidates[0], true
	}
	for _, candidate := range candidates {
		if IsLive(candidate) == wantsLive {
			return candidate, true
		}
	}
	return Candidate{}, false
}
