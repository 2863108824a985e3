package table

import "dexBoard/internal/model"

// Denylist is a static set of record ids hidden from a table regardless of
// the user's filter.
type Denylist map[string]struct{}

func NewDenylist(ids ...string) Denylist {
	d := make(Denylist, len(ids))
	for _, id := range ids {
		id = model.NormalizeID(id)
		if id == "" {
			continue
		}
		d[id] = struct{}{}
	}
	return d
}

func (d Denylist) Contains(id string) bool {
	if len(d) == 0 {
		return false
	}
	_, ok := d[model.NormalizeID(id)]
	return ok
}
