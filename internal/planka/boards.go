package planka

import (
	"context"
	"fmt"
)

// GetBoard fetches a board together with its included cards.
func (c *Client) GetBoard(ctx context.Context, boardID string) (*BoardResponse, error) {
	var resp BoardResponse
	if err := c.get(ctx, "/boards/"+boardID, &resp); err != nil {
		return nil, fmt.Errorf("get board %s: %w", boardID, err)
	}
	return &resp, nil
}
