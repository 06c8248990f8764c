// Package entities contains core business entities.
package entities

// TeamUnassigned is the team value for people absent from every team column.
// Two unassigned people share it and therefore cannot be paired together.
const TeamUnassigned = ""

// Person is a domain representation of a roster member.
type Person struct {
	Name  string
	Group string
	Team  string
}

// Pair is an unordered two-person pair; First/Second keep the commit order
// of the search attempt that produced it.
type Pair struct {
	First  string
	Second string
}

// Pairing is a complete partition of the population, in commit order.
type Pairing []Pair
