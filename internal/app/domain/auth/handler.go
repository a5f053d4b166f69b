package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/models"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

type AuthHandlers struct {
	gateway *Gateway
	logger  *zap.Logger
}

func NewAuthHandlers(gateway *Gateway, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		gateway: gateway,
		logger:  logger,
	}
}

// LoginPageHandler renders the login form. Signed-in users are sent home,
// there is nothing for them on this page.
func (h *AuthHandlers) LoginPageHandler(c *gin.Context) {
	if middleware.GetSession(c).IsLoggedIn() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login.html", views.AuthFormPage{
		Layout: views.Layout{Title: "Sign In", ActiveNav: "login"},
		Values: map[string]string{},
		Errors: map[string]string{},
	})
}

// LoginHandler validates the form locally and only then asks the API.
// Field errors re-render the page without an upstream call.
func (h *AuthHandlers) LoginHandler(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	values := map[string]string{"email": email}

	if errs := validateLogin(email, password); len(errs) > 0 {
		h.logger.Debug("login form rejected", zap.Int("field_errors", len(errs)))
		c.HTML(http.StatusBadRequest, "login.html", views.AuthFormPage{
			Layout: views.Layout{Title: "Sign In", ActiveNav: "login"},
			Values: values,
			Errors: errs,
		})
		return
	}

	rec, err := h.gateway.Login(c.Request.Context(), c.Writer, petalth.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		alert := "Invalid email or password"
		if !errors.Is(err, models.ErrUnauthenticated) && !errors.Is(err, models.ErrBadRequest) {
			alert = "We could not sign you in right now. Please try again."
		}
		c.HTML(http.StatusUnauthorized, "login.html", views.AuthFormPage{
			Layout: views.Layout{Title: "Sign In", ActiveNav: "login"},
			Values: values,
			Errors: map[string]string{},
			Alert:  alert,
		})
		return
	}

	h.logger.Info("login redirect", zap.Int64("user_id", rec.ID))
	c.Redirect(http.StatusFound, "/")
}

// RegisterPageHandler renders the registration form.
func (h *AuthHandlers) RegisterPageHandler(c *gin.Context) {
	if middleware.GetSession(c).IsLoggedIn() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "register.html", views.AuthFormPage{
		Layout: views.Layout{Title: "Create Account", ActiveNav: "register"},
		Values: map[string]string{},
		Errors: map[string]string{},
	})
}

// RegisterHandler creates the account and lands the new user on their
// own pets page.
func (h *AuthHandlers) RegisterHandler(c *gin.Context) {
	firstName := c.PostForm("firstName")
	lastName := c.PostForm("lastName")
	email := c.PostForm("email")
	password := c.PostForm("password")
	phone := c.PostForm("phone")
	address := c.PostForm("address")

	values := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"phone":     phone,
		"address":   address,
	}

	if errs := validateRegister(firstName, lastName, email, password, phone, address); len(errs) > 0 {
		h.logger.Debug("register form rejected", zap.Int("field_errors", len(errs)))
		c.HTML(http.StatusBadRequest, "register.html", views.AuthFormPage{
			Layout: views.Layout{Title: "Create Account", ActiveNav: "register"},
			Values: values,
			Errors: errs,
		})
		return
	}

	rec, err := h.gateway.Register(c.Request.Context(), c.Writer, petalth.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Phone:     phone,
		Address:   address,
	})
	if err != nil {
		alert := "We could not create your account right now. Please try again."
		if errors.Is(err, models.ErrConflict) {
			alert = "That email is already registered. Try signing in instead."
		}
		c.HTML(http.StatusBadRequest, "register.html", views.AuthFormPage{
			Layout: views.Layout{Title: "Create Account", ActiveNav: "register"},
			Values: values,
			Errors: map[string]string{},
			Alert:  alert,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", rec.ID))
}

// LogoutHandler drops the session and returns to the landing page.
func (h *AuthHandlers) LogoutHandler(c *gin.Context) {
	h.gateway.Logout(c.Request.Context(), c.Writer)
	c.Redirect(http.StatusFound, "/")
}
