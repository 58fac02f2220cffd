package models

// DoctorUser is the account subset embedded in doctor records.
type DoctorUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Doctor is a bookable practitioner as returned by GET /api/doctors/.
type Doctor struct {
	ID                 int        `json:"id"`
	User               DoctorUser `json:"user_details"`
	Specialization     string     `json:"specialization"`
	Experience         int        `json:"experience"`
	ConsultationFee    string     `json:"consultation_fee"`
	Bio                string     `json:"bio,omitempty"`
	AvailableDays      string     `json:"available_days,omitempty"`
	AvailableTimeStart string     `json:"available_time_start,omitempty"`
	AvailableTimeEnd   string     `json:"available_time_end,omitempty"`
	Address            string     `json:"address,omitempty"`
}

// DisplayName renders the customary "Dr. First Last" form.
func (d *Doctor) DisplayName() string {
	return "Dr. " + d.User.FirstName + " " + d.User.LastName
}

// Availability is the answer of GET /api/doctors/{id}/availability/.
type Availability struct {
	Available bool     `json:"available"`
	Slots     []string `json:"slots,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// SlotList is the answer of GET /api/doctors/{id}/slots/. Each slot is a
// "YYYY-MM-DD HH:MM" pair.
type SlotList struct {
	Slots []string `json:"slots"`
}
