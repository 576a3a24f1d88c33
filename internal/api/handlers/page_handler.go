package handlers

import (
	"Cocktail-Catalog/internal/ui"
	"bytes"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	PageHandler interface {
		Index(c *fiber.Ctx) error
		SubmitEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	pageHandler struct {
		controller *ui.Controller
	}
)

func NewPageHandler(controller *ui.Controller) PageHandler {
	return &pageHandler{controller: controller}
}

func (h *pageHandler) Index(c *fiber.Ctx) error {
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	st := ui.StateFromValues(query)
	editing, deleting := st.EditingID, st.DeleteID

	st = h.controller.Load(c.UserContext(), st)

	var form ui.Form
	if editing != 0 {
		st, form = h.controller.BeginEdit(st, editing)
	}
	if deleting != 0 {
		st = h.controller.RequestDelete(st, deleting)
	}
	return h.render(c, st, form)
}

func (h *pageHandler) SubmitEntry(c *fiber.Ctx) error {
	st := ui.State{Query: c.FormValue("q")}
	if id, err := strconv.ParseInt(c.FormValue("id"), 10, 64); err == nil {
		st.EditingID = id
	}
	form := ui.Form{
		Name:        c.FormValue("name"),
		Ingredients: c.FormValue("ingredients"),
		Recipe:      c.FormValue("recipe"),
		ImageRef:    c.FormValue("imageRef"),
		Comment:     c.FormValue("comment"),
	}

	var img *ui.Image
	if header, err := c.FormFile("image"); err == nil && header.Filename != "" && header.Size > 0 {
		file, err := header.Open()
		if err != nil {
			return err
		}
		defer file.Close()
		img = &ui.Image{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	ctx := c.UserContext()
	st = h.controller.Load(ctx, st)
	st, form = h.controller.Submit(ctx, st, form, img)
	if st.Notice != nil && st.Notice.Kind == ui.NoticeError {
		return h.render(c, st, form)
	}
	return c.Redirect(after(st), fiber.StatusSeeOther)
}

func (h *pageHandler) DeleteEntry(c *fiber.Ctx) error {
	st := ui.State{Query: c.FormValue("q")}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Redirect(st.Link(), fiber.StatusSeeOther)
	}
	st.DeleteID = id

	if c.FormValue("action") != "confirm" {
		return c.Redirect(h.controller.CancelDelete(st).Link(), fiber.StatusSeeOther)
	}
	ctx := c.UserContext()
	st = h.controller.ConfirmDelete(ctx, h.controller.Load(ctx, st))
	if st.Notice != nil && st.Notice.Kind == ui.NoticeError {
		return h.render(c, st, ui.Form{})
	}
	return c.Redirect(after(st), fiber.StatusSeeOther)
}

func (h *pageHandler) render(c *fiber.Ctx, st ui.State, form ui.Form) error {
	var buf bytes.Buffer
	if err := ui.Render(&buf, ui.NewPage(st, form)); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// after is the redirect target once an action succeeded, carrying its notice.
func after(st ui.State) string {
	if st.Notice == nil {
		return st.Link()
	}
	return st.NoticeLink(*st.Notice)
}
