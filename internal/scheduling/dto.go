package scheduling

import (
	"time"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

type AppointmentRequest struct {
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Address     string    `json:"address"`
	Notes       *string   `json:"notes"`
}

type AppointmentDTO struct {
	ID          uint      `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Address     string    `json:"address"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toAppointmentDTO(a domain.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ScheduledAt: a.ScheduledAt,
		Address:     a.Address,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}
