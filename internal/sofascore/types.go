package sofascore

import "fmt"

// Accumulation modes accepted by the league-stats endpoint.
const (
	AccumulationTotal   = "total"
	AccumulationPer90   = "per90"
	AccumulationPerGame = "perGame"
)

// PlayerInfo is the enrichment record scraped from a player page. Fields
// the page does not expose stay at their zero value.
type PlayerInfo struct {
	Age         *int
	Position    string
	Nationality string
}

// MissingFieldError reports that the upstream response did not contain a
// key the scraper depends on. Sofascore is versionless and its response
// shape changes without notice, so this is surfaced as its own type for
// callers to wrap with remediation advice.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("sofascore response is missing the expected %q key", e.Field)
}
