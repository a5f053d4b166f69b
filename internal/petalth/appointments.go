package petalth

import (
	"context"
	"net/http"
)

// Appointments lists all appointments visible to the current session.
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
