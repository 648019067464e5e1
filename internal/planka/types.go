package planka

// Board is a kanban board.
type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
}

// BoardIncluded carries the related records Planka returns with a board.
type BoardIncluded struct {
	Cards []Card `json:"cards"`
}

// BoardResponse from GET /boards/{boardId}
type BoardResponse struct {
	Item     Board         `json:"item"`
	Included BoardIncluded `json:"included"`
}

// Card represents a card on a board list.
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ListID      string `json:"listId"`
	BoardID     string `json:"boardId"`
}

// CardCreate is the POST body for creating a card.
type CardCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ListID      string `json:"listId"`
	Position    int    `json:"position"`
}

// CardResponse from POST /lists/{listId}/cards
type CardResponse struct {
	Item Card `json:"item"`
}
