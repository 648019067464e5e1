// Package planka provides a client for the Planka kanban board REST API.
//
// Endpoints used:
//   - GET  {base}/boards/{boardId} (board with included cards)
//   - POST {base}/lists/{listId}/cards (create card)
//
// Authentication is a bearer token on every request. Calls are never
// retried; callers decide whether a failure is fatal.
package planka
