package symtab

// Pending tracks identifiers that were tokenized ahead of the productions
// that give them meaning.
//
// Untyped symbols are consumed by declarations in declaration order, except
// within a parameter list where bottom-up reduction visits parameters last
// to first.  The recent stack holds every noted symbol, most recent on top,
// and is used to find the target of identifier and call productions.
type Pending struct {
	untyped []*Symbol
	recent  []*Symbol
}

func NewPending() *Pending {
	return &Pending{}
}

func (pending *Pending) Note(symbol *Symbol) {
	pending.recent = append(pending.recent, symbol)

	if symbol.IsTyped() {
		return
	}

	for _, other := range pending.untyped {
		if other == symbol {
			return
		}
	}
	pending.untyped = append(pending.untyped, symbol)
}

func (pending *Pending) NumUntyped() int {
	return len(pending.untyped)
}

func (pending *Pending) NumRecent() int {
	return len(pending.recent)
}

// Consume removes the next untyped symbol: the oldest one, or the newest one
// when lastFirst is set.
func (pending *Pending) Consume(lastFirst bool) (*Symbol, bool) {
	if len(pending.untyped) == 0 {
		return nil, false
	}

	var symbol *Symbol
	if lastFirst {
		symbol = pending.untyped[len(pending.untyped)-1]
		pending.untyped = pending.untyped[:len(pending.untyped)-1]
	} else {
		symbol = pending.untyped[0]
		pending.untyped = pending.untyped[1:]
	}
	return symbol, true
}

func (pending *Pending) Forget(symbol *Symbol) {
	for idx, other := range pending.untyped {
		if other == symbol {
			pending.untyped = append(
				pending.untyped[:idx],
				pending.untyped[idx+1:]...)
			return
		}
	}
}

func (pending *Pending) PopRecent() (*Symbol, bool) {
	if len(pending.recent) == 0 {
		return nil, false
	}

	symbol := pending.recent[len(pending.recent)-1]
	pending.recent = pending.recent[:len(pending.recent)-1]
	return symbol, true
}

// RecentFunction removes and returns the most recent function symbol.
// Non-function symbols above it are left in place.
func (pending *Pending) RecentFunction() (*Symbol, bool) {
	for idx := len(pending.recent) - 1; idx >= 0; idx-- {
		symbol := pending.recent[idx]
		if symbol.IsFunction() {
			pending.recent = append(
				pending.recent[:idx],
				pending.recent[idx+1:]...)
			return symbol, true
		}
	}
	return nil, false
}
