package petalth

import (
	"context"
	"net/http"
)

// Veterinarians lists every veterinarian of the clinic. The trailing slash
// matches the remote route registration.
func (c *Client) Veterinarians(ctx context.Context) ([]Veterinarian, error) {
	var vets []Veterinarian
	if err := c.do(ctx, http.MethodGet, "/api/veterinarians/", nil, &vets); err != nil {
		return nil, err
	}
	return vets, nil
}
