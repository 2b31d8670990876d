package core

// KeyWithCooldown turns a held key into discrete triggers at least
// interval seconds apart. A key that is not down never fires and leaves
// the cooldown state untouched. The first observed press fires at once.
//
// Releasing a key does not reset its cooldown: a release and re-press
// inside the interval after a trigger stays suppressed.
func (in *Input) KeyWithCooldown(k Key, def bool, interval float64) bool {
	if !in.Key(k, def) {
		return false
	}
	now := in.clock.Now()
	fired := false
	in.cooldown.Compute(k, func(last float64, loaded bool) (float64, bool) {
		if !loaded || now-last > interval {
			fired = true
			return now, false
		}
		return last, false
	})
	if fired {
		in.stats.triggers.Add(1)
	}
	return fired
}

// LastTrigger reports when k last fired through KeyWithCooldown.
func (in *Input) LastTrigger(k Key) (float64, bool) {
	return in.cooldown.Load(k)
}
