package model

import (
	"sort"
	"strings"
)

// City is identified by the pair of its name and country.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// FavoriteOp selects the mutation applied to a favorite set.
type FavoriteOp int

const (
	FavoriteAdd FavoriteOp = iota + 1
	FavoriteRemove
)

func (op FavoriteOp) String() string {
	switch op {
	case FavoriteAdd:
		return "add"
	case FavoriteRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// CitySet is an unordered set of cities.
type CitySet map[City]struct{}

// NewCitySet builds a set from the given cities, dropping duplicates.
func NewCitySet(cities ...City) CitySet {
	s := make(CitySet, len(cities))
	for _, c := range cities {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c. Adding a city already present is a no-op.
func (s CitySet) Add(c City) {
	s[c] = struct{}{}
}

// Remove deletes c. Removing an absent city is a no-op.
func (s CitySet) Remove(c City) {
	delete(s, c)
}

// Has reports whether c is in the set.
func (s CitySet) Has(c City) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cities in the set.
func (s CitySet) Len() int {
	return len(s)
}

// Clone returns an independent copy. The copy of a nil set is empty, not nil.
func (s CitySet) Clone() CitySet {
	out := make(CitySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// List returns the cities sorted by country, then name.
func (s CitySet) List() []City {
	out := make([]City, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Validate reports whether both parts of the city are set.
func (c City) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCityName
	}
	if strings.TrimSpace(c.Country) == "" {
		return ErrEmptyCityCountry
	}
	return nil
}
