package services

import "betblitz-backend/internal/models"

// Broadcaster pushes each simulator tick to connected clients. The
// websocket hub implements it; tests plug in a recorder.
type Broadcaster interface {
	BroadcastMatches(matches []models.Match)
}
