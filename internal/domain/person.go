package domain

// Person is a roster entry owning zero or more flowers.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // Unique, trimmed, case-sensitive
}

// Flower is a flower instance owned by exactly one person.
// Names are free text: duplicates are allowed and need not exist in the library.
type Flower struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PersonID int64  `json:"person_id"`
}

// PersonFlowers is a person together with a set of its flowers.
// Depending on the query the set is either every owned flower or only the matching ones.
type PersonFlowers struct {
	Person
	Flowers []Flower `json:"flowers"`
}

// NewPersonFlowers builds the nested view, normalizing a nil flower slice to empty.
func NewPersonFlowers(p Person, flowers []Flower) *PersonFlowers {
	if flowers == nil {
		flowers = []Flower{}
	}
	return &PersonFlowers{Person: p, Flowers: flowers}
}

// GroupFlowers attaches flowers to their owners in person order.
// Flowers whose owner is not in persons are ignored.
func GroupFlowers(persons []Person, flowers []Flower) []*PersonFlowers {
	byPerson := make(map[int64][]Flower, len(persons))
	for _, f := range flowers {
		byPerson[f.PersonID] = append(byPerson[f.PersonID], f)
	}

	out := make([]*PersonFlowers, 0, len(persons))
	for _, p := range persons {
		out = append(out, NewPersonFlowers(p, byPerson[p.ID]))
	}
	return out
}

// OwnerIDs returns the distinct owner ids of flowers in first-appearance order.
func OwnerIDs(flowers []Flower) []int64 {
	seen := make(map[int64]struct{}, len(flowers))
	ids := make([]int64, 0, len(flowers))
	for _, f := range flowers {
		if _, ok := seen[f.PersonID]; ok {
			continue
		}
		seen[f.PersonID] = struct{}{}
		ids = append(ids, f.PersonID)
	}
	return ids
}
