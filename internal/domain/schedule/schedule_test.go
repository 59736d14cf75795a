package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	physio  = DisciplineRef{ID: 1, Name: "Physiotherapy"}
	massage = DisciplineRef{ID: 2, Name: "Massage"}
	chiro   = DisciplineRef{ID: 3, Name: "Chiropractic"}

	day = time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 10, 8, hour, minute, 0, 0, time.UTC)
}

func practitioner(id int, first, last string, disciplines ...DisciplineRef) PractitionerRow {
	return PractitionerRow{StaffID: id, FirstName: first, LastName: last, Group: GroupFor(disciplines...)}
}

func TestGroupKey_OrderIndependent(t *testing.T) {
	assert.Equal(t, NewGroupKey(1, 3), NewGroupKey(3, 1))
	assert.Equal(t, NewGroupKey(1, 3), NewGroupKey(3, 1, 3))
	assert.NotEqual(t, NewGroupKey(1), NewGroupKey(1, 3))
	assert.Equal(t, NoDisciplines, NewGroupKey())

	a := GroupFor(chiro, physio)
	b := GroupFor(physio, chiro)
	assert.Equal(t, a, b)
	assert.Equal(t, "Physiotherapy/Chiropractic", a.Name)
	assert.Equal(t, GroupKey("1,3"), a.Key)
}

func TestBuild_NestsAppointmentsUnderPractitioners(t *testing.T) {
	practitioners := []PractitionerRow{practitioner(10, "Annie", "Hu", physio)}
	appointments := []AppointmentRow{
		{ID: 1, StaffID: 10, PatientName: "Hugo Ma", TreatmentName: "PT - Initial", TreatmentLength: 45, StartsAt: at(10, 0)},
		{ID: 2, StaffID: 10, PatientName: "Ida Lu", TreatmentName: "PT - Follow Up", TreatmentLength: 30, StartsAt: at(11, 0)},
	}

	s := Build(day, practitioners, appointments)

	require.Len(t, s.Groups, 1)
	group := s.Groups[0]
	assert.Equal(t, "Physiotherapy", group.Name)
	require.Len(t, group.Practitioners, 1)

	annie := group.Practitioners[0]
	assert.Equal(t, "Annie Hu", annie.Name)
	require.Len(t, annie.Appointments, 2)
	assert.Equal(t, "10:00AM - Hugo Ma - PT - Initial", annie.Appointments[0].Label())
	assert.Equal(t, at(10, 45), annie.Appointments[0].EndsAt())
	assert.Equal(t, 2, annie.Appointments[1].ID)
}

func TestBuild_EmptyDay(t *testing.T) {
	s := Build(day, nil, nil)

	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Keys())
	assert.Equal(t, day, s.Date)
}

func TestBuild_PractitionerWithoutAppointmentsStillListed(t *testing.T) {
	practitioners := []PractitionerRow{
		practitioner(10, "Annie", "Hu", physio),
		practitioner(11, "Ben", "Ko", physio),
	}
	appointments := []AppointmentRow{{ID: 1, StaffID: 10, StartsAt: at(9, 0)}}

	s := Build(day, practitioners, appointments)

	group, ok := s.Group(NewGroupKey(1))
	require.True(t, ok)
	ben, ok := group.Practitioner(11)
	require.True(t, ok)
	assert.NotNil(t, ben.Appointments)
	assert.Empty(t, ben.Appointments)
}

func TestBuild_DistinctDisciplineCombinationsAreNotMerged(t *testing.T) {
	rows := []PractitionerRow{
		practitioner(10, "Annie", "Hu", physio, chiro),
		practitioner(11, "Ben", "Ko", physio),
	}
	SortPractitioners(rows)

	s := Build(day, rows, nil)

	require.Len(t, s.Groups, 2)
	assert.Equal(t, []GroupKey{"1", "1,3"}, s.Keys())
	assert.Equal(t, "Physiotherapy", s.Groups[0].Name)
	assert.Equal(t, "Physiotherapy/Chiropractic", s.Groups[1].Name)

	_, inBoth := s.Groups[0].Practitioner(10)
	assert.False(t, inBoth)
}

func TestBuild_SiblingsInSameGroupInNameOrder(t *testing.T) {
	rows := []PractitionerRow{
		practitioner(12, "Zoe", "Adams", physio),
		practitioner(10, "Annie", "Hu", physio),
		practitioner(11, "Annie", "Ba", physio),
	}
	SortPractitioners(rows)

	s := Build(day, rows, nil)

	require.Len(t, s.Groups, 1)
	var names []string
	for _, p := range s.Groups[0].Practitioners {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Annie Ba", "Annie Hu", "Zoe Adams"}, names)
}

func TestBuild_PreservesInputOrderOfGroups(t *testing.T) {
	rows := []PractitionerRow{
		practitioner(11, "Ben", "Ko", massage),
		practitioner(10, "Annie", "Hu", chiro),
	}

	s := Build(day, rows, nil)

	assert.Equal(t, []GroupKey{"2", "3"}, s.Keys())
}

func TestBuild_IsDeterministic(t *testing.T) {
	rows := []PractitionerRow{
		practitioner(10, "Annie", "Hu", physio),
		practitioner(11, "Ben", "Ko", massage),
		practitioner(12, "Cat", "Li", physio, massage),
	}
	appointments := []AppointmentRow{
		{ID: 3, StaffID: 12, StartsAt: at(8, 0)},
		{ID: 1, StaffID: 10, StartsAt: at(9, 0)},
		{ID: 2, StaffID: 11, StartsAt: at(9, 0)},
		{ID: 4, StaffID: 10, StartsAt: at(13, 30)},
	}
	SortPractitioners(rows)

	first := Build(day, rows, appointments)
	second := Build(day, rows, appointments)

	assert.Equal(t, first, second)
	assert.Equal(t, []GroupKey{"2", "1", "1,2"}, first.Keys())
}

func TestBuild_RepeatedPractitionerReplacedInPlace(t *testing.T) {
	rows := []PractitionerRow{
		practitioner(10, "Annie", "Hu", physio),
		practitioner(11, "Ben", "Ko", physio),
		practitioner(10, "Annie", "Hu", physio),
	}

	s := Build(day, rows, nil)

	require.Len(t, s.Groups[0].Practitioners, 2)
	assert.Equal(t, 10, s.Groups[0].Practitioners[0].StaffID)
}

func TestBuild_IgnoresAppointmentsOfUnlistedStaff(t *testing.T) {
	rows := []PractitionerRow{practitioner(10, "Annie", "Hu", physio)}
	appointments := []AppointmentRow{{ID: 1, StaffID: 99, StartsAt: at(9, 0)}}

	s := Build(day, rows, appointments)

	p, ok := s.Groups[0].Practitioner(10)
	require.True(t, ok)
	assert.Empty(t, p.Appointments)
}

func TestPractitionerRow_Name(t *testing.T) {
	assert.Equal(t, "Annie Hu", PractitionerRow{FirstName: "Annie", LastName: "Hu"}.Name())
	assert.Equal(t, "Annie", PractitionerRow{FirstName: "Annie"}.Name())
	assert.Equal(t, "Hu", PractitionerRow{LastName: "Hu"}.Name())
}
