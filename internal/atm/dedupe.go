package atm

import "github.com/geomarket-ma/atmboard/internal/model"

// Dedupe collapses records sharing an id. The value kept for each id is the
// last one seen in input order, while the output position is where that id
// first appeared. Both halves matter: keyed-map insertion order for
// placement, last-write-wins for content.
func Dedupe(atms []model.ATM) []model.ATM {
	index := make(map[string]int, len(atms))
	out := make([]model.ATM, 0, len(atms))
	for _, a := range atms {
		if i, ok := index[a.ID]; ok {
			out[i] = a
			continue
		}
		index[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}
