package handlers

import (
	"github.com/crewdeck-dev/crewdeck/internal/files"
	"github.com/crewdeck-dev/crewdeck/internal/store"
)

// Handler carries the store and blob collaborator into the route
// functions. It is constructed once in main and handed to the router, so
// tests can build one around a fresh in-memory store.
type Handler struct {
	store store.Store
	files *files.Store
}

func New(s store.Store, f *files.Store) *Handler {
	return &Handler{store: s, files: f}
}
