package channel

// DefaultRules returns the built-in rule list used when no catalog file overrides it.
// Order is significant.
func DefaultRules() []Rule {
	return []Rule{
		MustRule(`allsvenskan`, "Discovery+"),
		MustRule(`premier league`, "Viaplay / Viasat"),
		MustRule(`champions league`, "Viaplay / V Sport Fotboll"),
		MustRule(`\bshl\b`, "TV4"),
		MustRule(`hockeyallsvenskan`, "TV4"),
		MustRule(`\bf1\b|\bformula 1\b`, "Viaplay / Viasat"),
		MustRule(`indycar`, "Viaplay / Viasat"),
		MustRule(`dart`, "Viaplay / Viasat"),
		MustRule(`fotbolls[- ]?vm|fifa world cup|vm`, "Viaplay"),
		MustRule(`efl cup|league cup`, "Viaplay"),
	}
}
