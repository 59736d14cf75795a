package converter

import (
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.UserID,
		FirstName: patient.User.FirstName,
		LastName:  patient.User.LastName,
		Email:     patient.User.Email,
		Phone:     patient.User.Phone,
		Birthday:  formatBirthday(patient),
	}
}

// PatientToForm prefills the edit form with the stored values
func PatientToForm(patient *entity.Patient) dto.PatientForm {
	return dto.PatientForm{
		FirstName: patient.User.FirstName,
		LastName:  patient.User.LastName,
		Email:     patient.User.Email,
		Phone:     patient.User.Phone,
		Birthday:  formatBirthday(patient),
	}
}

func formatBirthday(patient *entity.Patient) string {
	if patient.Birthday == nil {
		return ""
	}
	return patient.Birthday.Format(dateLayout)
}
