package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/domain/appointments"
	"github.com/SoYuDev/petalth-crm/internal/app/domain/auth"
	"github.com/SoYuDev/petalth-crm/internal/app/domain/home"
	"github.com/SoYuDev/petalth-crm/internal/app/domain/pets"
	"github.com/SoYuDev/petalth-crm/internal/app/domain/veterinarians"
	"github.com/SoYuDev/petalth-crm/internal/app/guard"
	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
	"github.com/SoYuDev/petalth-crm/internal/pkg/config"
)

type AppHandlers struct {
	Home          *home.HomeHandlers
	Auth          *auth.AuthHandlers
	Pets          *pets.PetHandlers
	Veterinarians *veterinarians.VeterinarianHandlers
	Appointments  *appointments.AppointmentHandlers
}

func Setup(r *gin.Engine, cfg *config.Config, client *petalth.Client, store *session.CookieStore, log *zap.Logger) {
	r.SetHTMLTemplate(views.Templates())

	handlers := setupDependencies(cfg, client, store, log)
	setupRouter(r, handlers, log)
}

func setupDependencies(cfg *config.Config, client *petalth.Client, store *session.CookieStore, log *zap.Logger) *AppHandlers {
	gateway := auth.NewGateway(client, store, log)
	vetService := veterinarians.NewService(client, cfg.API.CacheTTL, log)

	return &AppHandlers{
		Home:          home.NewHomeHandlers(log),
		Auth:          auth.NewAuthHandlers(gateway, log),
		Pets:          pets.NewPetHandlers(client, log),
		Veterinarians: veterinarians.NewVeterinarianHandlers(vetService, log),
		Appointments:  appointments.NewAppointmentHandlers(client, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	public := r.Group("/")
	{
		public.GET("/", h.Home.IndexHandler)
		public.GET("/veterinarians", h.Veterinarians.ListHandler)

		public.GET("/login", h.Auth.LoginPageHandler)
		public.POST("/login", h.Auth.LoginHandler)
		public.GET("/register", h.Auth.RegisterPageHandler)
		public.POST("/register", h.Auth.RegisterHandler)
		public.POST("/logout", h.Auth.LogoutHandler)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireLogin(log))
	{
		protected.GET("/pets", h.Pets.MyPetsHandler)
		protected.GET("/appointments", h.Appointments.ListHandler)
	}

	owner := r.Group("/pets/:ownerId")
	owner.Use(middleware.RequireLogin(log), guard.RequireOwner(log))
	{
		owner.GET("", h.Pets.ListHandler)
		owner.POST("", h.Pets.CreateHandler)
		owner.POST("/update/:petId", h.Pets.UpdateHandler)
		owner.POST("/delete/:petId", h.Pets.DeleteHandler)
	}
}
