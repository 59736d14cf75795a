package schedule

import (
	"sort"
	"strconv"
	"strings"
)

// GroupKey identifies a combination of disciplines. It is built from the
// sorted, de-duplicated discipline ids, so the same set always yields the
// same key no matter what order the disciplines were loaded in.
type GroupKey string

// NoDisciplines is the key of practitioners without any discipline.
const NoDisciplines GroupKey = ""

// DisciplineRef is the part of a discipline the schedule needs.
type DisciplineRef struct {
	ID   int
	Name string
}

// Group is a discipline combination: its key plus its display name, the
// discipline names in id order joined by "/", e.g. "Physiotherapy/Chiropractic".
type Group struct {
	Key  GroupKey
	Name string
}

// NewGroupKey builds the canonical key for a set of discipline ids.
func NewGroupKey(ids ...int) GroupKey {
	if len(ids) == 0 {
		return NoDisciplines
	}

	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		parts = append(parts, strconv.Itoa(id))
	}
	return GroupKey(strings.Join(parts, ","))
}

// GroupFor derives the group of a practitioner from their disciplines.
func GroupFor(disciplines ...DisciplineRef) Group {
	refs := append([]DisciplineRef(nil), disciplines...)
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })

	ids := make([]int, 0, len(refs))
	names := make([]string, 0, len(refs))
	for i, ref := range refs {
		if i > 0 && ref.ID == refs[i-1].ID {
			continue
		}
		ids = append(ids, ref.ID)
		names = append(names, ref.Name)
	}

	return Group{
		Key:  NewGroupKey(ids...),
		Name: strings.Join(names, "/"),
	}
}
