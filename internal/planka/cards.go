package planka

import (
	"context"
	"fmt"
)

// CreateCard creates a card on the given list and returns the created card.
func (c *Client) CreateCard(ctx context.Context, listID string, card CardCreate) (*Card, error) {
	var resp CardResponse
	if err := c.post(ctx, "/lists/"+listID+"/cards", card, &resp); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	c.logger.Debug("created card", "id", resp.Item.ID, "name", resp.Item.Name)
	return &resp.Item, nil
}
