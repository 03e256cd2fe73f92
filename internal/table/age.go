package table

// ColAge is the canonical age column name. Source files that went through
// a join can carry the age under a suffixed variant instead.
const ColAge = "age"

// ageAliases is the fixed precedence order for reconciling age columns:
// the plain name wins, then the first join suffix, then the second.
var ageAliases = []string{ColAge, "age_x", "age_y"}

// ResolveAgeColumn returns the source column that should act as the
// canonical age for this table, and false when no age-like column exists.
// Every use site goes through this resolver instead of re-implementing the
// fallback chain.
func ResolveAgeColumn(t *Table) (string, bool) {
	for _, alias := range ageAliases {
		if t.HasColumn(alias) {
			return alias, true
		}
	}
	return "", false
}
