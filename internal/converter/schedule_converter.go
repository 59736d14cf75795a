package converter

import (
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/schedule"
)

// ScheduleToResponse converts the nested schedule to its JSON shape,
// keeping the group and practitioner order.
func ScheduleToResponse(s *schedule.Schedule) *dto.ScheduleResponse {
	if s == nil {
		return nil
	}

	groups := make([]dto.DisciplineGroupResponse, len(s.Groups))
	for i, g := range s.Groups {
		practitioners := make([]dto.PractitionerResponse, len(g.Practitioners))
		for j, p := range g.Practitioners {
			entries := make([]dto.ScheduleEntryResponse, len(p.Appointments))
			for k, apt := range p.Appointments {
				entries[k] = dto.ScheduleEntryResponse{
					ID:            apt.ID,
					Label:         apt.Label(),
					PatientName:   apt.PatientName,
					TreatmentName: apt.TreatmentName,
					StartsAt:      apt.StartsAt,
					EndsAt:        apt.EndsAt(),
				}
			}
			practitioners[j] = dto.PractitionerResponse{
				StaffID:      p.StaffID,
				Name:         p.Name,
				Appointments: entries,
			}
		}
		groups[i] = dto.DisciplineGroupResponse{
			Key:           string(g.Key),
			Name:          g.Name,
			Practitioners: practitioners,
		}
	}

	return &dto.ScheduleResponse{
		Date:   s.Date.Format(dateLayout),
		Groups: groups,
	}
}
