package brackets

// PairingStrategy decides which qualified teams meet in the bracket's opening
// round. Propagation never depends on the strategy, so alternative seeding can
// be plugged in without touching the rest of the package.
type PairingStrategy interface {
	Pair(qualified []string, matchCount int) [][2]string

	GetName() string
}

// FirstVsLastPairing pairs qualifier i against qualifier len-1-i over the
// flattened qualifier list. This is deliberately not a seeded draw: qualifiers
// arrive group by group, not interleaved by rank.
type FirstVsLastPairing struct{}

func (FirstVsLastPairing) GetName() string { return "FirstVsLast" }

func (FirstVsLastPairing) Pair(qualified []string, matchCount int) [][2]string {
	pairs := make([][2]string, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		j := len(qualified) - 1 - i
		if i >= len(qualified) || j < 0 || j <= i {
			break
		}
		pairs = append(pairs, [2]string{qualified[i], qualified[j]})
	}
	return pairs
}
