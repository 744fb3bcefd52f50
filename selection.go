package planner

// Selection is the many-to-many relation between camps and people being
// planned, plus the set of people currently chosen as planning subjects.
// A camp key only exists while it has at least one attendee.
//
// Iteration order is stable: camps in the order they were first selected,
// attendees in the order they were added. That order carries no meaning
// beyond display stability.
//
// Selection is not safe for concurrent use; all mutation happens on the
// single actor driving a planning session.
type Selection struct {
	campOrder []int64
	attendees map[int64][]int64
	people    map[int64]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		attendees: make(map[int64][]int64),
		people:    make(map[int64]struct{}),
	}
}

// TogglePerson flips the person's membership in the selected-people set and
// reports the new state. Deselecting a person also removes them from every
// camp they were assigned to; camps left without attendees disappear.
func (s *Selection) TogglePerson(personID int64) bool {
	if _, ok := s.people[personID]; !ok {
		s.people[personID] = struct{}{}
		return true
	}
	delete(s.people, personID)
	for _, campID := range append([]int64(nil), s.campOrder...) {
		s.removePairing(campID, personID)
	}
	return false
}

// PersonSelected reports whether the person is a current planning subject.
func (s *Selection) PersonSelected(personID int64) bool {
	_, ok := s.people[personID]
	return ok
}

// SelectedPeople returns the ids of all selected people, in no particular
// order.
func (s *Selection) SelectedPeople() []int64 {
	out := make([]int64, 0, len(s.people))
	for id := range s.people {
		out = append(out, id)
	}
	return out
}

// TogglePairing flips the person's attendance at the camp and reports the
// new state. Adding a pairing also marks the person as selected, so the
// relation never references someone outside the selected-people set.
func (s *Selection) TogglePairing(campID, personID int64) bool {
	if s.PairSelected(campID, personID) {
		s.removePairing(campID, personID)
		return false
	}
	s.addPairing(campID, personID)
	return true
}

// PairSelected reports whether the person is attending the camp.
func (s *Selection) PairSelected(campID, personID int64) bool {
	for _, id := range s.attendees[campID] {
		if id == personID {
			return true
		}
	}
	return false
}

// CampSelected reports whether the camp has any attendees.
func (s *Selection) CampSelected(campID int64) bool {
	return len(s.attendees[campID]) > 0
}

// Camps returns the selected camp ids in selection order.
func (s *Selection) Camps() []int64 {
	return append([]int64(nil), s.campOrder...)
}

// Attendees returns the ids of the people attending the camp, in the order
// they were added.
func (s *Selection) Attendees(campID int64) []int64 {
	return append([]int64(nil), s.attendees[campID]...)
}

// RemoveCamp drops the camp and all its attendees from the relation.
func (s *Selection) RemoveCamp(campID int64) {
	if _, ok := s.attendees[campID]; !ok {
		return
	}
	delete(s.attendees, campID)
	s.dropCampOrder(campID)
}

// Clear empties the relation. The selected-people set is untouched.
func (s *Selection) Clear() {
	s.campOrder = nil
	s.attendees = make(map[int64][]int64)
}

// Empty reports whether no pairings exist.
func (s *Selection) Empty() bool {
	return len(s.attendees) == 0
}

// Pairs flattens the relation into the persisted form: one (person, camp)
// pair per attendee, camps in selection order.
func (s *Selection) Pairs() []PlanPair {
	var pairs []PlanPair
	for _, campID := range s.campOrder {
		for _, personID := range s.attendees[campID] {
			pairs = append(pairs, PlanPair{PersonID: personID, CampID: campID})
		}
	}
	return pairs
}

// Load replaces the whole selection state with the given persisted pairs.
// Pairs referencing a person id not in known are skipped and returned as
// dropped, so a plan mentioning a since-deleted child still loads partially.
// Every accepted person becomes a planning subject.
func (s *Selection) Load(pairs []PlanPair, known map[int64]struct{}) (dropped []int64) {
	s.campOrder = nil
	s.attendees = make(map[int64][]int64)
	s.people = make(map[int64]struct{})

	for _, pair := range pairs {
		if _, ok := known[pair.PersonID]; !ok {
			dropped = append(dropped, pair.PersonID)
			continue
		}
		if !s.PairSelected(pair.CampID, pair.PersonID) {
			s.addPairing(pair.CampID, pair.PersonID)
		}
	}
	return dropped
}

func (s *Selection) addPairing(campID, personID int64) {
	if _, ok := s.attendees[campID]; !ok {
		s.campOrder = append(s.campOrder, campID)
	}
	s.attendees[campID] = append(s.attendees[campID], personID)
	s.people[personID] = struct{}{}
}

func (s *Selection) removePairing(campID, personID int64) {
	list := s.attendees[campID]
	for i, id := range list {
		if id == personID {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.attendees, campID)
		s.dropCampOrder(campID)
		return
	}
	s.attendees[campID] = list
}

func (s *Selection) dropCampOrder(campID int64) {
	for i, id := range s.campOrder {
		if id == campID {
			s.campOrder = append(s.campOrder[:i], s.campOrder[i+1:]...)
			return
		}
	}
}
