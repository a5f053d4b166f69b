package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
)

type HomeHandlers struct {
	logger *zap.Logger
}

func NewHomeHandlers(logger *zap.Logger) *HomeHandlers {
	return &HomeHandlers{logger: logger}
}

func (h *HomeHandlers) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", views.HomePage{
		Layout: views.Layout{
			Title:     "Home",
			ActiveNav: "home",
			User:      middleware.GetSession(c).Current(),
		},
	})
}
