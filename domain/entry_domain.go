package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	MessageSuccessGetEntries  = "success get entries"
	MessageSuccessGetEntry    = "success get entry"
	MessageSuccessCreateEntry = "entry created successfully"
	MessageSuccessUpdateEntry = "entry updated successfully"
	MessageSuccessDeleteEntry = "entry deleted successfully"

	MessageFailedGetEntries  = "failed to get entries"
	MessageFailedGetEntry    = "failed to get entry"
	MessageFailedCreateEntry = "failed to create entry"
	MessageFailedUpdateEntry = "failed to update entry"
	MessageFailedDeleteEntry = "failed to delete entry"

	ErrEntryNotFound       = errors.New("entry not found")
	ErrEntryFieldsRequired = errors.New("name, ingredients, and recipe are required")
)

type (
	// Entry is the wire representation of a catalog entry. Field names are
	// part of the public contract.
	Entry struct {
		ID          int64     `json:"id"`
		Name        string    `json:"name"`
		Ingredients string    `json:"ingredients"`
		Recipe      string    `json:"recipe"`
		ImageRef    *string   `json:"imageRef"`
		Comment     *string   `json:"comment"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// EntryRequest is the body of both create and replace requests.
	EntryRequest struct {
		Name        string  `json:"name" validate:"required"`
		Ingredients string  `json:"ingredients" validate:"required"`
		Recipe      string  `json:"recipe" validate:"required"`
		ImageRef    *string `json:"imageRef"`
		Comment     *string `json:"comment"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)

// Normalize returns a copy with blank optional fields set to nil.
func (r EntryRequest) Normalize() EntryRequest {
	r.ImageRef = normalizeOptional(r.ImageRef)
	r.Comment = normalizeOptional(r.Comment)
	return r
}

// HasRequiredFields reports whether name, ingredients and recipe are all set.
func (r EntryRequest) HasRequiredFields() bool {
	return r.Name != "" && r.Ingredients != "" && r.Recipe != ""
}

func normalizeOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
