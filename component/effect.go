package component

import "time"

// EffectKind enumerates timed power-up effects
type EffectKind uint8

const (
	// EffectSpeed doubles launch impulse
	EffectSpeed EffectKind = iota
	// EffectJump doubles grounded jump impulse
	EffectJump

	effectCount
)

var effectNames = [effectCount]string{
	EffectSpeed: "speed",
	EffectJump:  "jump",
}

func (k EffectKind) String() string {
	if k < effectCount {
		return effectNames[k]
	}
	return "unknown"
}

// ParseEffect maps a level file tag to its kind
func ParseEffect(name string) (EffectKind, bool) {
	for i, n := range effectNames {
		if n == name {
			return EffectKind(i), true
		}
	}
	return 0, false
}

// Effects maps each kind to its expiry instant
// An effect is active iff now < expiry; entries are removed the first time they are read expired
type Effects struct {
	expiry [effectCount]time.Time
	set    [effectCount]bool
}

// Grant sets expiry to now+d, replacing any running timer of the same kind
func (e *Effects) Grant(kind EffectKind, now time.Time, d time.Duration) {
	if kind >= effectCount {
		return
	}
	e.expiry[kind] = now.Add(d)
	e.set[kind] = true
}

// Active reports whether kind runs at now and prunes it when expired
func (e *Effects) Active(kind EffectKind, now time.Time) bool {
	if kind >= effectCount || !e.set[kind] {
		return false
	}
	if now.Before(e.expiry[kind]) {
		return true
	}
	e.set[kind] = false
	e.expiry[kind] = time.Time{}
	return false
}

// Prune removes every expired entry
func (e *Effects) Prune(now time.Time) {
	for k := EffectKind(0); k < effectCount; k++ {
		e.Active(k, now)
	}
}

// Expiry returns the stored instant without pruning
func (e *Effects) Expiry(kind EffectKind) (time.Time, bool) {
	if kind >= effectCount || !e.set[kind] {
		return time.Time{}, false
	}
	return e.expiry[kind], true
}

// Len returns the number of stored entries, expired or not
func (e *Effects) Len() int {
	n := 0
	for _, s := range e.set {
		if s {
			n++
		}
	}
	return n
}

// Kinds lists stored kinds in enumeration order
func (e *Effects) Kinds() []EffectKind {
	var out []EffectKind
	for k := EffectKind(0); k < effectCount; k++ {
		if e.set[k] {
			out = append(out, k)
		}
	}
	return out
}

func (e *Effects) Clear() {
	*e = Effects{}
}
