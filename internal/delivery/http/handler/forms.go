package handler

import (
	"net/http"

	"practice-scheduler/internal/delivery/dto"
)

// The form readers below expect r.ParseForm to have been called.

func staffFormFromRequest(r *http.Request) dto.StaffForm {
	return dto.StaffForm{
		FirstName:     r.PostForm.Get("first_name"),
		LastName:      r.PostForm.Get("last_name"),
		Email:         r.PostForm.Get("email"),
		Phone:         r.PostForm.Get("phone"),
		Biography:     r.PostForm.Get("biography"),
		DisciplineIDs: r.PostForm["discipline_ids[]"],
	}
}

func patientFormFromRequest(r *http.Request) dto.PatientForm {
	return dto.PatientForm{
		FirstName: r.PostForm.Get("first_name"),
		LastName:  r.PostForm.Get("last_name"),
		Email:     r.PostForm.Get("email"),
		Phone:     r.PostForm.Get("phone"),
		Birthday:  r.PostForm.Get("birthday"),
	}
}

func disciplineFormFromRequest(r *http.Request) dto.DisciplineForm {
	return dto.DisciplineForm{
		Name:  r.PostForm.Get("name"),
		Title: r.PostForm.Get("title"),
	}
}

func treatmentFormFromRequest(r *http.Request) dto.TreatmentForm {
	return dto.TreatmentForm{
		Name:         r.PostForm.Get("name"),
		DisciplineID: r.PostForm.Get("discipline_id"),
		Length:       r.PostForm.Get("length"),
		Price:        r.PostForm.Get("price"),
	}
}

func appointmentFormFromRequest(r *http.Request) dto.AppointmentForm {
	return dto.AppointmentForm{
		PractitionerID: r.PostForm.Get("practitioner_id"),
		TreatmentID:    r.PostForm.Get("treatment_id"),
		PatientID:      r.PostForm.Get("patient_id"),
		Date:           r.PostForm.Get("date"),
		Time:           r.PostForm.Get("time"),
	}
}
