package table

// The dashboard and the tacklers extractor disagree on how an age filter
// treats rows with no age: the dashboard excludes them once a range is
// applied, the extractor lets them through. Both policies live here so the
// asymmetry is visible in one place.

// FilterAgeRange keeps rows whose age in ageCol lies inside the inclusive
// bounds. Rows with a missing age are excluded. A nil bound is open.
func FilterAgeRange(t *Table, ageCol string, minAge, maxAge *int) *Table {
	if minAge == nil && maxAge == nil {
		return t
	}
	return t.Where(func(row Row) bool {
		age := row[ageCol]
		if !age.Valid {
			return false
		}
		return inBounds(age.Num, minAge, maxAge)
	})
}

// FilterAgeRangePermissive keeps rows inside the inclusive bounds and rows
// with a missing age. Used by the tacklers extractor, where scraped rows
// frequently lack an age.
func FilterAgeRangePermissive(t *Table, ageCol string, minAge, maxAge *int) *Table {
	if minAge == nil && maxAge == nil {
		return t
	}
	return t.Where(func(row Row) bool {
		age := row[ageCol]
		if !age.Valid {
			return true
		}
		return inBounds(age.Num, minAge, maxAge)
	})
}

func inBounds(age float64, minAge, maxAge *int) bool {
	if minAge != nil && age < float64(*minAge) {
		return false
	}
	if maxAge != nil && age > float64(*maxAge) {
		return false
	}
	return true
}

// FilterCountryEquals keeps rows whose country matches exactly. Rows with
// a missing country never satisfy a positive filter.
func FilterCountryEquals(t *Table, country string) *Table {
	return t.Where(func(row Row) bool {
		return row[ColCountry].Text == country
	})
}

// FilterCountryNotEquals keeps rows whose country is present and differs.
// This is the "foreign players" case: missing countries are excluded
// rather than counted as foreign.
func FilterCountryNotEquals(t *Table, country string) *Table {
	return t.Where(func(row Row) bool {
		c := row[ColCountry].Text
		return c != "" && c != country
	})
}
