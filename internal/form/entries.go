package form

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/calburn/internal/model"
)

// AddEntry appends an empty entry to the selected category.
func (s *Sheet) AddEntry() model.Entry {
	return s.AddEntryTo(s.selected)
}

// AddEntryTo appends an empty entry to c, numbered after the existing ones.
func (s *Sheet) AddEntryTo(c model.Category) model.Entry {
	e := model.Entry{
		Category: c,
		Index:    len(s.containers[c]) + 1,
	}
	s.containers[c] = append(s.containers[c], e)
	s.log.Debug().
		Str("category", string(c)).
		Int("index", e.Index).
		Msg("entry added")
	return e
}

// Entries returns a copy of c's entries in display order.
func (s *Sheet) Entries(c model.Category) []model.Entry {
	src := s.containers[c]
	out := make([]model.Entry, len(src))
	copy(out, src)
	return out
}

// Count returns the number of entries in c.
func (s *Sheet) Count(c model.Category) int {
	return len(s.containers[c])
}

// Total returns the number of entries across all categories.
func (s *Sheet) Total() int {
	n := 0
	for _, c := range model.Categories {
		n += len(s.containers[c])
	}
	return n
}

// SetName sets the name of entry index (1-based) in c.
func (s *Sheet) SetName(c model.Category, index int, v string) bool {
	e := s.entry(c, index)
	if e == nil {
		return false
	}
	e.Name = v
	return true
}

// SetCalories sets the calories text of entry index (1-based) in c.
func (s *Sheet) SetCalories(c model.Category, index int, v string) bool {
	e := s.entry(c, index)
	if e == nil {
		return false
	}
	e.Calories = v
	return true
}

// Lookup resolves a field identifier such as "dinner-2-calories".
func (s *Sheet) Lookup(id string) (model.Entry, bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 || (parts[2] != "name" && parts[2] != "calories") {
		return model.Entry{}, false
	}
	c, err := model.ParseCategory(parts[0])
	if err != nil || string(c) != parts[0] {
		return model.Entry{}, false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Entry{}, false
	}
	e := s.entry(c, index)
	if e == nil {
		return model.Entry{}, false
	}
	return *e, true
}

func (s *Sheet) entry(c model.Category, index int) *model.Entry {
	list := s.containers[c]
	if index < 1 || index > len(list) {
		return nil
	}
	return &list[index-1]
}
