package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Monika-Dangar/real-estate-management/models"
)

func TestAppointmentRequestedMessage(t *testing.T) {
	msg := appointmentRequestedMessage(models.AppointmentSiteVisit, "Amy", "Andheri West")
	assert.Equal(t, "New Site Visit requested by buyer Amy for property in Andheri West", msg)
	assert.Contains(t, msg, "Amy")
	assert.Contains(t, msg, "Andheri West")
}

func TestAppointmentStatusMessage(t *testing.T) {
	msg := appointmentStatusMessage(models.AppointmentCancelled, models.AppointmentVideoCall)
	assert.Equal(t, "Appointment status updated to cancelled for Video Call", msg)
}
