package scoring

// Tier is the qualitative outcome of the check-up.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

// String returns the short tier name.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "High"
	case TierMid:
		return "Mid"
	default:
		return "Low"
	}
}

// Key is the stable identifier persisted with results and sent to
// delivery collaborators.
func (t Tier) Key() string {
	switch t {
	case TierHigh:
		return "scale"
	case TierMid:
		return "consolidating"
	default:
		return "fragile"
	}
}

// Title is the headline shown on the report.
func (t Tier) Title() string {
	switch t {
	case TierHigh:
		return "Structure Ready to Grow"
	case TierMid:
		return "Structure in Consolidation"
	default:
		return "Fragile Structure"
	}
}

// ParseTierKey is the inverse of Key. Unknown keys map to TierLow.
func ParseTierKey(key string) (Tier, bool) {
	for _, t := range []Tier{TierLow, TierMid, TierHigh} {
		if t.Key() == key {
			return t, true
		}
	}
	return TierLow, false
}

func (t Tier) downgrade() Tier {
	if t > TierLow {
		return t - 1
	}
	return TierLow
}
