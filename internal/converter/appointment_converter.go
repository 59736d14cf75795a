package converter

import (
	"strconv"

	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
)

const timeOfDayLayout = "15:04"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		StaffID:     appointment.StaffID,
		PatientID:   appointment.PatientID,
		TreatmentID: appointment.TreatmentID,
		StartsAt:    appointment.StartsAt,
	}
}

// AppointmentToForm prefills the appointment form. Copying an appointment
// uses the same values.
func AppointmentToForm(appointment *entity.Appointment) dto.AppointmentForm {
	return dto.AppointmentForm{
		PractitionerID: strconv.Itoa(appointment.StaffID),
		TreatmentID:    strconv.Itoa(appointment.TreatmentID),
		PatientID:      strconv.Itoa(appointment.PatientID),
		Date:           appointment.StartsAt.Format(dateLayout),
		Time:           appointment.StartsAt.Format(timeOfDayLayout),
	}
}
