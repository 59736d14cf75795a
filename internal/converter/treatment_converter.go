package converter

import (
	"strconv"

	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
)

// TreatmentToResponse converts a Treatment entity to TreatmentResponse DTO
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:           treatment.ID,
		Name:         treatment.Name,
		DisciplineID: treatment.DisciplineID,
		Length:       treatment.Length,
		Price:        treatment.Price.StringFixed(2),
	}
}

func TreatmentToForm(treatment *entity.Treatment) dto.TreatmentForm {
	return dto.TreatmentForm{
		Name:         treatment.Name,
		DisciplineID: strconv.Itoa(treatment.DisciplineID),
		Length:       strconv.Itoa(treatment.Length),
		Price:        treatment.Price.StringFixed(2),
	}
}
