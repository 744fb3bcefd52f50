package types

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the authenticated guardian account.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Person is a registered child the planner tracks. Owned by the backend; the
// SDK only ever holds a read-only copy.
type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Birthdate Date   `json:"birthdate"`
}

// Camp is a scheduled activity with optional age bounds and pricing. Field
// names on the wire follow the backend contract, which is partly German
// (kosten = price, geschwister = sibling, fruehbucher = early bird).
// Pointer fields are genuinely optional; nil means the backend did not set
// them, which is distinct from zero (a camp can legitimately cost 0).
type Camp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`

	AgeMin *int `json:"alter_min,omitempty"`
	AgeMax *int `json:"alter_max,omitempty"`

	BasePrice      *float64 `json:"kosten,omitempty"`
	SiblingPrice   *float64 `json:"kosten_geschwister,omitempty"`
	EarlyBirdPrice *float64 `json:"kosten_fruehbucher,omitempty"`
	EarlyBirdUntil *Date    `json:"fruehbucher_bis,omitempty"`
	PriceNote      string   `json:"kosten_notiz,omitempty"`

	// Descriptive metadata, passed through untouched.
	Source               string `json:"source,omitempty"`
	Location             string `json:"ort,omitempty"`
	VenueAddress         string `json:"veranstaltungsort_adresse,omitempty"`
	AgeGroup             string `json:"alter_zielgruppe,omitempty"`
	TimeOfDay            string `json:"zeit,omitempty"`
	Description          string `json:"beschreibung,omitempty"`
	Spots                *int   `json:"freie_plaetze,omitempty"`
	RegistrationDeadline *Date  `json:"anmeldeschluss,omitempty"`
	DetailURL            string `json:"detail_url,omitempty"`
	SignupURL            string `json:"anmelde_url,omitempty"`
}

// PlanPair is one flattened (person, camp) assignment of a persisted plan.
// A camp attended by three children yields three pairs.
type PlanPair struct {
	PersonID int64 `json:"person_id"`
	CampID   int64 `json:"freizeit_id"`
}

// PlanPairs is the flattened selection list of a persisted plan. The backend
// returns it either as a JSON array or as a keyed object of records, so
// decoding normalises both shapes into an ordered slice. Map keys are sorted
// so the resulting order is deterministic.
type PlanPairs []PlanPair

func (p *PlanPairs) UnmarshalJSON(b []byte) error {
	var asList []PlanPair
	if err := json.Unmarshal(b, &asList); err == nil {
		*p = asList
		return nil
	}
	var asMap map[string]PlanPair
	if err := json.Unmarshal(b, &asMap); err != nil {
		return fmt.Errorf("selections: expected array or object of pairs: %w", err)
	}
	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(PlanPairs, 0, len(asMap))
	for _, k := range keys {
		out = append(out, asMap[k])
	}
	*p = out
	return nil
}

// Plan is a named, persisted snapshot of a selection plus its computed total.
type Plan struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Selections PlanPairs `json:"selections"`
	TotalCost  float64   `json:"total_cost"`
	CreatedAt  UnixTime  `json:"created_at"`
}
