package petalth

import (
	"context"
	"fmt"
	"net/http"
)

// PetsByOwner lists the pets belonging to one owner.
func (c *Client) PetsByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	var pets []Pet
	path := fmt.Sprintf("/api/pets/owner/%d", ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (c *Client) CreatePet(ctx context.Context, req PetRequest) (*Pet, error) {
	var pet Pet
	if err := c.do(ctx, http.MethodPost, "/api/pets", req, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (c *Client) UpdatePet(ctx context.Context, id int64, req PetRequest) (*Pet, error) {
	var pet Pet
	path := fmt.Sprintf("/api/pets/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (c *Client) DeletePet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/pets/%d", id), nil, nil)
}
