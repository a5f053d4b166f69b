package veterinarians

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
)

type VeterinarianHandlers struct {
	service *Service
	logger  *zap.Logger
}

func NewVeterinarianHandlers(service *Service, logger *zap.Logger) *VeterinarianHandlers {
	return &VeterinarianHandlers{
		service: service,
		logger:  logger,
	}
}

// ListHandler renders the public veterinarian roster.
func (h *VeterinarianHandlers) ListHandler(c *gin.Context) {
	page := views.VeterinariansPage{
		Layout: views.Layout{
			Title:     "Veterinarians",
			ActiveNav: "veterinarians",
			User:      middleware.GetSession(c).Current(),
		},
	}

	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load veterinarians", zap.Error(err))
		page.Alert = "We could not load the veterinarian roster right now."
		c.HTML(http.StatusOK, "veterinarians.html", page)
		return
	}

	page.Veterinarians = list
	c.HTML(http.StatusOK, "veterinarians.html", page)
}
