package mockapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) appointmentJSON(a *Appointment) gin.H {
	out := gin.H{
		"id":         a.ID,
		"doctor":     a.DoctorID,
		"patient":    a.PatientID,
		"date":       a.Date,
		"time":       a.Time,
		"reason":     a.Reason,
		"status":     a.Status,
		"created_at": a.CreatedAt.Format(time.RFC3339),
		"updated_at": a.UpdatedAt.Format(time.RFC3339),
	}
	if d, err := s.store.DoctorByID(a.DoctorID); err == nil {
		out["doctor_details"] = s.doctorJSON(d)
	}
	return out
}

func (s *Server) listAppointments(c *gin.Context) {
	appointments := s.store.AppointmentsFor(currentUserFrom(c))
	out := make([]gin.H, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, s.appointmentJSON(a))
	}
	c.JSON(http.StatusOK, out)
}

type bookingInput struct {
	Doctor int    `json:"doctor" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

func (s *Server) createAppointment(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "doctor, date and time are required"})
		return
	}

	user := currentUserFrom(c)
	a, err := s.store.CreateAppointment(input.Doctor, user.ID, input.Date, input.Time, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Doctor not found"})
		case errors.Is(err, ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "This slot has just been taken."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	s.log.Info(c.Request.Context(), "appointment booked",
		"appointment_id", a.ID, "doctor_id", a.DoctorID, "patient_id", a.PatientID)
	c.JSON(http.StatusCreated, s.appointmentJSON(a))
}

// patchAppointment applies a status transition. Patients may only touch
// their own bookings.
func (s *Server) patchAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "status is required"})
		return
	}

	a, err := s.store.AppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}
	user := currentUserFrom(c)
	if user.UserType == RolePatient && a.PatientID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}

	a, err = s.store.SetAppointmentStatus(id, input.Status)
	if err != nil {
		if errors.Is(err, ErrBadTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}

	s.log.Info(c.Request.Context(), "appointment status changed",
		"appointment_id", a.ID, "status", a.Status)
	c.JSON(http.StatusOK, s.appointmentJSON(a))
}

// markPaid is the dedicated payment endpoint some deployments use instead of
// the status PATCH.
func (s *Server) markPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := s.store.AppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}
	user := currentUserFrom(c)
	if user.UserType == RolePatient && a.PatientID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}

	a, err = s.store.SetAppointmentStatus(id, StatusPaid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.appointmentJSON(a))
}
