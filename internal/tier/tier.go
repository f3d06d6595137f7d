package tier

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a loyalty level. Tiers are totally ordered Bronze < Silver < Gold < Platinum < Diamond.
type Tier string

const (
	Bronze   Tier = "Bronze"
	Silver   Tier = "Silver"
	Gold     Tier = "Gold"
	Platinum Tier = "Platinum"
	Diamond  Tier = "Diamond"
)

// Ordered lists every tier from lowest to highest.
var Ordered = []Tier{Bronze, Silver, Gold, Platinum, Diamond}

// Default thresholds used when a tier has no configured threshold.
const (
	DefaultSilver   = 25
	DefaultGold     = 250
	DefaultPlatinum = 500
	DefaultDiamond  = 1000
)

// ErrUnknownTier is returned by Parse for names outside the tier set
var ErrUnknownTier = errors.New("unknown tier")

// ErrThresholdOrder is returned when thresholds are not strictly increasing
var ErrThresholdOrder = errors.New("tier thresholds must be strictly increasing")

// Thresholds holds the minimum points for each tier above Bronze.
// A zero field means "use the default" for that tier.
type Thresholds struct {
	Silver   int `json:"silver,omitempty" yaml:"silver"`
	Gold     int `json:"gold,omitempty" yaml:"gold"`
	Platinum int `json:"platinum,omitempty" yaml:"platinum"`
	Diamond  int `json:"diamond,omitempty" yaml:"diamond"`
}

// Defaults returns the built-in thresholds
func Defaults() Thresholds {
	return Thresholds{
		Silver:   DefaultSilver,
		Gold:     DefaultGold,
		Platinum: DefaultPlatinum,
		Diamond:  DefaultDiamond,
	}
}

// Normalized fills every unset threshold with its default
func (t Thresholds) Normalized() Thresholds {
	d := Defaults()
	if t.Silver <= 0 {
		t.Silver = d.Silver
	}
	if t.Gold <= 0 {
		t.Gold = d.Gold
	}
	if t.Platinum <= 0 {
		t.Platinum = d.Platinum
	}
	if t.Diamond <= 0 {
		t.Diamond = d.Diamond
	}
	return t
}

// Of returns the threshold for a tier. Bronze is always 0.
func (t Thresholds) Of(tr Tier) int {
	n := t.Normalized()
	switch tr {
	case Silver:
		return n.Silver
	case Gold:
		return n.Gold
	case Platinum:
		return n.Platinum
	case Diamond:
		return n.Diamond
	default:
		return 0
	}
}

// With returns a copy of t with the threshold of tr replaced.
func (t Thresholds) With(tr Tier, points int) Thresholds {
	switch tr {
	case Silver:
		t.Silver = points
	case Gold:
		t.Gold = points
	case Platinum:
		t.Platinum = points
	case Diamond:
		t.Diamond = points
	}
	return t
}

// Validate checks that effective thresholds are strictly increasing
func (t Thresholds) Validate() error {
	prev := 0
	for _, tr := range Ordered[1:] {
		v := t.Of(tr)
		if v <= prev {
			return fmt.Errorf("%w: %s threshold %d must be greater than %d", ErrThresholdOrder, tr, v, prev)
		}
		prev = v
	}
	return nil
}

// For returns the highest tier whose threshold is at or below points.
// Negative points are treated as zero.
func For(points int, thresholds Thresholds) Tier {
	if points < 0 {
		points = 0
	}
	for i := len(Ordered) - 1; i > 0; i-- {
		if points >= thresholds.Of(Ordered[i]) {
			return Ordered[i]
		}
	}
	return Bronze
}

// Parse maps a case-insensitive name onto a Tier
func Parse(name string) (Tier, error) {
	for _, tr := range Ordered {
		if strings.EqualFold(name, string(tr)) {
			return tr, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// Index returns the position of tr in Ordered, or -1.
func Index(tr Tier) int {
	for i, o := range Ordered {
		if o == tr {
			return i
		}
	}
	return -1
}

// Higher returns the greater of two tiers
func Higher(a, b Tier) Tier {
	if Index(b) > Index(a) {
		return b
	}
	return a
}

// Next returns the tier after tr. ok is false at Diamond.
func Next(tr Tier) (next Tier, ok bool) {
	i := Index(tr)
	if i < 0 || i == len(Ordered)-1 {
		return "", false
	}
	return Ordered[i+1], true
}

// Key is the lowercase form used for stored currentTier values and config keys.
func (t Tier) Key() string {
	return strings.ToLower(string(t))
}

func (t Tier) String() string {
	return string(t)
}
