package appointments

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

type appointmentAPI interface {
	Appointments(ctx context.Context) ([]petalth.Appointment, error)
}

type AppointmentHandlers struct {
	api    appointmentAPI
	logger *zap.Logger
}

func NewAppointmentHandlers(api appointmentAPI, logger *zap.Logger) *AppointmentHandlers {
	return &AppointmentHandlers{
		api:    api,
		logger: logger,
	}
}

// ListHandler renders the signed-in user's appointment schedule.
func (h *AppointmentHandlers) ListHandler(c *gin.Context) {
	page := views.AppointmentsPage{
		Layout: views.Layout{
			Title:     "Appointments",
			ActiveNav: "appointments",
			User:      middleware.GetSession(c).Current(),
		},
	}

	list, err := h.api.Appointments(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load appointments", zap.Error(err))
		page.Alert = "We could not load your appointments right now."
		c.HTML(http.StatusOK, "appointments.html", page)
		return
	}

	for _, a := range list {
		page.Appointments = append(page.Appointments, views.AppointmentView{
			When:             a.DateTime,
			ServiceName:      a.ServiceName,
			Status:           a.Status,
			PetName:          a.PetName,
			VeterinarianName: a.VeterinarianName,
		})
	}

	c.HTML(http.StatusOK, "appointments.html", page)
}
