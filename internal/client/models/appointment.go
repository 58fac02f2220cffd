package models

// Appointment statuses as the backend reports them. The client only ever
// writes "paid" and "cancelled" through PATCH.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentPaid      = "paid"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment as returned by GET /api/appointments/.
type Appointment struct {
	ID        int     `json:"id"`
	Doctor    int     `json:"doctor"`
	DoctorRef *Doctor `json:"doctor_details,omitempty"`
	Patient   int     `json:"patient"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// BookingRequest is the exact creation payload of POST /api/appointments/.
type BookingRequest struct {
	Doctor int    `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// TokenPair is the answer of POST /api/auth/jwt/create/. The refresh token is
// received but not persisted: expiry is handled by forcing a re-login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegistrationForm is the payload of POST /api/auth/users/.
type RegistrationForm struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// VideoCallHandoff carries everything the conferencing layer needs to join a
// call: the room URL and a meeting token. The SDK itself is out of scope.
type VideoCallHandoff struct {
	RoomURL string `json:"room_url"`
	Token   string `json:"token"`
}
