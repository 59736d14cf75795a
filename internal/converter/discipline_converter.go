package converter

import (
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
)

// DisciplineToResponse converts a Discipline entity to DisciplineResponse DTO
func DisciplineToResponse(discipline *entity.Discipline) *dto.DisciplineResponse {
	if discipline == nil {
		return nil
	}

	return &dto.DisciplineResponse{
		ID:    discipline.ID,
		Name:  discipline.Name,
		Title: discipline.Title,
	}
}

// DisciplinesToResponses converts a slice of Discipline entities to slice of DisciplineResponse DTOs
func DisciplinesToResponses(disciplines []entity.Discipline) []dto.DisciplineResponse {
	responses := make([]dto.DisciplineResponse, len(disciplines))
	for i := range disciplines {
		responses[i] = *DisciplineToResponse(&disciplines[i])
	}
	return responses
}

func DisciplineToForm(discipline *entity.Discipline) dto.DisciplineForm {
	return dto.DisciplineForm{
		Name:  discipline.Name,
		Title: discipline.Title,
	}
}
