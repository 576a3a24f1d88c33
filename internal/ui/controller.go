package ui

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/pkg/client"
	"context"
	"io"
	"log/slog"
)

// Backend is the part of the entries API the catalog page needs.
// *client.Client satisfies it.
type Backend interface {
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	CreateEntry(ctx context.Context, req domain.EntryRequest) (domain.Entry, error)
	UpdateEntry(ctx context.Context, id int64, req domain.EntryRequest) error
	DeleteEntry(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, fileName, contentType string, r io.Reader) (string, error)
}

// Image is a file chosen in the form, uploaded before the entry is saved.
type Image struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

const noticeMissing = "That cocktail no longer exists."

type Controller struct {
	backend Backend
}

func NewController(backend Backend) *Controller {
	return &Controller{backend: backend}
}

// Load fetches the whole collection. On failure the previous entries are
// kept and an error notice is set.
func (c *Controller) Load(ctx context.Context, st State) State {
	st, _ = c.reload(ctx, st)
	return st
}

func (c *Controller) reload(ctx context.Context, st State) (State, error) {
	entries, err := c.backend.ListEntries(ctx)
	if err != nil {
		return c.fail(st, "loading entries", err), err
	}
	st.Entries = entries
	return st, nil
}

// BeginEdit makes id the edit target and returns the form filled from the
// already loaded copy of that entry.
func (c *Controller) BeginEdit(st State, id int64) (State, Form) {
	e, ok := st.find(id)
	if !ok {
		st.EditingID = 0
		return st.withNotice(NoticeError, noticeMissing), Form{}
	}
	st.EditingID = id
	return st, FormFromEntry(e)
}

// Submit uploads img when given, then updates the edit target or creates a
// new entry. A successful upload replaces any typed image reference. On
// success edit state is cleared and the collection re-fetched; on failure
// only the notice (and UploadedRef, if the upload went through) change, and
// the returned form keeps what the user typed.
func (c *Controller) Submit(ctx context.Context, st State, form Form, img *Image) (State, Form) {
	if img != nil {
		ref, err := c.backend.UploadImage(ctx, img.FileName, img.ContentType, img.Body)
		if err != nil {
			return c.fail(st, "uploading image", err), form
		}
		st.UploadedRef = ref
		form.ImageRef = ref
	}

	req := form.Request()
	notice := NoticeCreated
	if st.EditingID != 0 {
		if err := c.backend.UpdateEntry(ctx, st.EditingID, req); err != nil {
			return c.fail(st, "updating entry", err), form
		}
		notice = NoticeUpdated
	} else {
		if _, err := c.backend.CreateEntry(ctx, req); err != nil {
			return c.fail(st, "creating entry", err), form
		}
	}

	st.EditingID = 0
	st.UploadedRef = ""
	st, err := c.reload(ctx, st)
	if err != nil {
		return st, Form{}
	}
	return st.withSuccess(notice), Form{}
}

// RequestDelete asks for confirmation before deleting id.
func (c *Controller) RequestDelete(st State, id int64) State {
	if _, ok := st.find(id); !ok {
		st.DeleteID = 0
		return st.withNotice(NoticeError, noticeMissing)
	}
	st.DeleteID = id
	return st
}

func (c *Controller) CancelDelete(st State) State {
	st.DeleteID = 0
	return st
}

// ConfirmDelete deletes the pending entry and re-fetches the collection.
func (c *Controller) ConfirmDelete(ctx context.Context, st State) State {
	if st.DeleteID == 0 {
		return st
	}
	if err := c.backend.DeleteEntry(ctx, st.DeleteID); err != nil {
		return c.fail(st, "deleting entry", err)
	}

	if st.EditingID == st.DeleteID {
		st.EditingID = 0
	}
	if st.ExpandedID == st.DeleteID {
		st.ExpandedID = 0
	}
	st.DeleteID = 0
	st, err := c.reload(ctx, st)
	if err != nil {
		return st
	}
	return st.withSuccess(NoticeDeleted)
}

// ToggleExpand shows the full recipe of id, or collapses it when it is
// already shown.
func ToggleExpand(st State, id int64) State {
	if st.ExpandedID == id {
		st.ExpandedID = 0
	} else {
		st.ExpandedID = id
	}
	return st
}

func (c *Controller) fail(st State, op string, err error) State {
	slog.Warn("catalog request failed", slog.String("op", op), slog.String("error", err.Error()))
	return st.withNotice(NoticeError, client.Message(err))
}
