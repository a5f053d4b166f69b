package pets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/middleware"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

// petAPI is the slice of the Petalth client the pet pages need.
type petAPI interface {
	PetsByOwner(ctx context.Context, ownerID int64) ([]petalth.Pet, error)
	CreatePet(ctx context.Context, req petalth.PetRequest) (*petalth.Pet, error)
	UpdatePet(ctx context.Context, id int64, req petalth.PetRequest) (*petalth.Pet, error)
	DeletePet(ctx context.Context, id int64) error
}

type PetHandlers struct {
	api    petAPI
	logger *zap.Logger
}

func NewPetHandlers(api petAPI, logger *zap.Logger) *PetHandlers {
	return &PetHandlers{
		api:    api,
		logger: logger,
	}
}

// MyPetsHandler sends the signed-in user to their own pets page.
func (h *PetHandlers) MyPetsHandler(c *gin.Context) {
	cache := middleware.GetSession(c)
	user := cache.Current()
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", user.ID))
}

// ListHandler renders the pets of the owner in the URL. Ownership is
// checked by the route guard before this runs.
func (h *PetHandlers) ListHandler(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	page := views.PetsPage{
		Layout: views.Layout{
			Title:     "My Pets",
			ActiveNav: "pets",
			User:      middleware.GetSession(c).Current(),
		},
		OwnerID: ownerID,
	}

	list, err := h.api.PetsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to load pets", zap.Int64("owner_id", ownerID), zap.Error(err))
		page.Alert = "We could not load your pets right now."
		c.HTML(http.StatusOK, "pets.html", page)
		return
	}

	now := time.Now()
	for _, p := range list {
		page.Pets = append(page.Pets, views.PetView{
			ID:        p.ID,
			Name:      p.Name,
			PhotoURL:  p.PhotoURL,
			BirthDate: p.BirthDate,
			AgeYears:  AgeInYears(p.BirthDate, now),
		})
	}

	c.HTML(http.StatusOK, "pets.html", page)
}

// CreateHandler adds a pet for the owner in the URL and reloads the list.
func (h *PetHandlers) CreateHandler(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}

	req := petalth.PetRequest{
		Name:      c.PostForm("name"),
		BirthDate: c.PostForm("birthDate"),
		PhotoURL:  c.PostForm("photoUrl"),
		OwnerID:   ownerID,
	}

	if _, err := h.api.CreatePet(c.Request.Context(), req); err != nil {
		h.logger.Error("failed to create pet",
			zap.Int64("owner_id", ownerID),
			zap.String("name", req.Name),
			zap.Error(err),
		)
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", ownerID))
}

// UpdateHandler saves edits to an existing pet.
func (h *PetHandlers) UpdateHandler(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}
	petID, err := strconv.ParseInt(c.Param("petId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", ownerID))
		return
	}

	req := petalth.PetRequest{
		Name:      c.PostForm("name"),
		BirthDate: c.PostForm("birthDate"),
		PhotoURL:  c.PostForm("photoUrl"),
		OwnerID:   ownerID,
	}

	if _, err := h.api.UpdatePet(c.Request.Context(), petID, req); err != nil {
		h.logger.Error("failed to update pet",
			zap.Int64("pet_id", petID),
			zap.Error(err),
		)
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", ownerID))
}

// DeleteHandler removes a pet and reloads the list.
func (h *PetHandlers) DeleteHandler(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/pets")
		return
	}
	petID, err := strconv.ParseInt(c.Param("petId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", ownerID))
		return
	}

	if err := h.api.DeletePet(c.Request.Context(), petID); err != nil {
		h.logger.Error("failed to delete pet",
			zap.Int64("pet_id", petID),
			zap.Error(err),
		)
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pets/%d", ownerID))
}
