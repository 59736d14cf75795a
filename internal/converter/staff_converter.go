package converter

import (
	"strconv"

	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
)

// StaffToResponse converts a Staff entity to StaffResponse DTO
func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:          staff.UserID,
		FirstName:   staff.User.FirstName,
		LastName:    staff.User.LastName,
		Email:       staff.User.Email,
		Phone:       staff.User.Phone,
		Biography:   staff.Bio(),
		Disciplines: DisciplinesToResponses(staff.Disciplines),
	}
}

// StaffToForm prefills the edit form with the stored values
func StaffToForm(staff *entity.Staff) dto.StaffForm {
	ids := make([]string, len(staff.Disciplines))
	for i, d := range staff.Disciplines {
		ids[i] = strconv.Itoa(d.ID)
	}

	return dto.StaffForm{
		FirstName:     staff.User.FirstName,
		LastName:      staff.User.LastName,
		Email:         staff.User.Email,
		Phone:         staff.User.Phone,
		Biography:     staff.Biography,
		DisciplineIDs: ids,
	}
}
