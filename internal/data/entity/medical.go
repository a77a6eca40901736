package entity

type Doctor struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	Availability   string `db:"availability" json:"availability"`
	Experience     string `db:"experience" json:"experience"`
}

type MedicalCheck struct {
	ID        string `db:"id" json:"id"`
	AnimalID  string `db:"animal_id" json:"animalId"`
	DoctorID  string `db:"doctor_id" json:"doctorId"`
	Date      string `db:"date" json:"date"`
	Diagnosis string `db:"diagnosis" json:"diagnosis"`
	Treatment string `db:"treatment" json:"treatment"`
	Status    string `db:"status" json:"status"`
	Notes     string `db:"notes" json:"notes"`
}

type Vaccination struct {
	ID               string `db:"id" json:"id"`
	AnimalID         string `db:"animal_id" json:"animalId"`
	VaccineName      string `db:"vaccine_name" json:"vaccineName"`
	DateAdministered string `db:"date_administered" json:"dateAdministered"`
	NextDueDate      string `db:"next_due_date" json:"nextDueDate"`
	Veterinarian     string `db:"veterinarian" json:"veterinarian"`
	Notes            string `db:"notes" json:"notes"`
}
