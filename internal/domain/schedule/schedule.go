// Package schedule assembles the daily schedule view: flat practitioner and
// appointment rows for one date become discipline group -> practitioner ->
// appointments, in a deterministic order. It performs no I/O.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// TimeLayout is how appointment start times are rendered on the schedule.
const TimeLayout = "3:04PM"

// PractitionerRow is a staff member considered scheduled for the date.
type PractitionerRow struct {
	StaffID   int
	FirstName string
	LastName  string
	Group     Group
}

// Name returns the practitioner's display name.
func (p PractitionerRow) Name() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// AppointmentRow is one appointment on the date, flattened for display.
type AppointmentRow struct {
	ID              int
	StaffID         int
	PatientName     string
	TreatmentName   string
	TreatmentLength int
	StartsAt        time.Time
}

func (a AppointmentRow) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.TreatmentLength) * time.Minute)
}

// Label renders the entry as shown on the schedule: "10:00AM - Hugo Ma - PT - Initial".
func (a AppointmentRow) Label() string {
	return fmt.Sprintf("%s - %s - %s", a.StartsAt.Format(TimeLayout), a.PatientName, a.TreatmentName)
}

// Practitioner is a staff member bound to the day, with that day's appointments.
type Practitioner struct {
	StaffID      int
	Name         string
	Appointments []AppointmentRow
}

// DisciplineGroup holds the practitioners sharing one discipline combination.
type DisciplineGroup struct {
	Group
	Practitioners []Practitioner

	index map[int]int
}

// Practitioner looks up a member of the group by staff id.
func (g *DisciplineGroup) Practitioner(staffID int) (*Practitioner, bool) {
	i, ok := g.index[staffID]
	if !ok {
		return nil, false
	}
	return &g.Practitioners[i], true
}

// Schedule is the nested view of one calendar date. Groups and the
// practitioners inside them keep the order of the practitioner rows.
type Schedule struct {
	Date   time.Time
	Groups []DisciplineGroup

	index map[GroupKey]int
}

// Build assembles the schedule for date.
//
// practitioners must already be ordered the way they should be displayed
// (see SortPractitioners); Build keeps that order at both levels.
// appointments must be ordered by start time; each practitioner receives its
// appointments in input order. Appointments of staff not listed in
// practitioners are not shown. A practitioner without appointments still gets
// an entry with an empty list.
func Build(date time.Time, practitioners []PractitionerRow, appointments []AppointmentRow) *Schedule {
	byStaff := make(map[int][]AppointmentRow)
	for _, apt := range appointments {
		byStaff[apt.StaffID] = append(byStaff[apt.StaffID], apt)
	}

	s := &Schedule{
		Date:   date,
		Groups: []DisciplineGroup{},
		index:  make(map[GroupKey]int),
	}
	for _, row := range practitioners {
		appts := byStaff[row.StaffID]
		if appts == nil {
			appts = []AppointmentRow{}
		}
		s.insert(row.Group, Practitioner{
			StaffID:      row.StaffID,
			Name:         row.Name(),
			Appointments: appts,
		})
	}
	return s
}

// insert places p at [group][p.StaffID]. A repeated staff id within a group
// replaces the earlier entry in place.
func (s *Schedule) insert(group Group, p Practitioner) {
	gi, ok := s.index[group.Key]
	if !ok {
		s.Groups = append(s.Groups, DisciplineGroup{
			Group: group,
			index: make(map[int]int),
		})
		gi = len(s.Groups) - 1
		s.index[group.Key] = gi
	}

	g := &s.Groups[gi]
	if pi, ok := g.index[p.StaffID]; ok {
		g.Practitioners[pi] = p
		return
	}
	g.Practitioners = append(g.Practitioners, p)
	g.index[p.StaffID] = len(g.Practitioners) - 1
}

// IsEmpty reports whether nobody is scheduled on the date.
func (s *Schedule) IsEmpty() bool {
	return len(s.Groups) == 0
}

// Group looks up a discipline group by key.
func (s *Schedule) Group(key GroupKey) (*DisciplineGroup, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return &s.Groups[i], true
}

// Keys lists the group keys in display order.
func (s *Schedule) Keys() []GroupKey {
	keys := make([]GroupKey, len(s.Groups))
	for i, g := range s.Groups {
		keys[i] = g.Key
	}
	return keys
}

// SortPractitioners orders rows by group name, then first and last name.
// Ties fall back to the group key and staff id so the order is total.
func SortPractitioners(rows []PractitionerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Group.Name != b.Group.Name {
			return a.Group.Name < b.Group.Name
		}
		if a.Group.Key != b.Group.Key {
			return a.Group.Key < b.Group.Key
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.StaffID < b.StaffID
	})
}
