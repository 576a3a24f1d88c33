package ui

import (
	"Cocktail-Catalog/domain"
	"strconv"
)

// Page is the view model of the catalog page. Strings are raw user text;
// escaping happens in the template.
type Page struct {
	Query      string
	ClearLink  string
	Total      int
	Cards      []Card
	Notice     *Notice
	Form       FormView
	PendingDel *Card
}

type Card struct {
	ID          int64
	Name        string
	Ingredients string
	Recipe      string
	Comment     string
	ImageSrc    string
	CreatedAt   string
	Expanded    bool
	ExpandLink  string
	EditLink    string
	DeleteLink  string
	DeleteURL   string
}

type FormView struct {
	Form
	Editing     bool
	EditingID   int64
	UploadedRef string
	CancelLink  string
}

const createdAtLayout = "2006-01-02 15:04 UTC"

// NewPage builds the view of st with the search applied.
func NewPage(st State, form Form) Page {
	results := Search(st.Entries, st.Query)

	p := Page{
		Query:     st.Query,
		ClearLink: State{EditingID: st.EditingID}.Link(),
		Total:     len(st.Entries),
		Cards:     make([]Card, 0, len(results)),
		Notice:    st.Notice,
		Form: FormView{
			Form:        form,
			Editing:     st.EditingID != 0,
			EditingID:   st.EditingID,
			UploadedRef: st.UploadedRef,
			CancelLink:  State{Query: st.Query}.Link(),
		},
	}
	for _, e := range results {
		card := newCard(st, e)
		p.Cards = append(p.Cards, card)
		if e.ID == st.DeleteID {
			pending := card
			p.PendingDel = &pending
		}
	}
	if p.PendingDel == nil && st.DeleteID != 0 {
		if e, ok := st.find(st.DeleteID); ok {
			pending := newCard(st, e)
			p.PendingDel = &pending
		}
	}
	return p
}

func newCard(st State, e domain.Entry) Card {
	edit := st
	edit.EditingID = e.ID
	edit.DeleteID = 0

	del := st
	del.DeleteID = e.ID

	return Card{
		ID:          e.ID,
		Name:        e.Name,
		Ingredients: e.Ingredients,
		Recipe:      e.Recipe,
		Comment:     deref(e.Comment),
		ImageSrc:    deref(e.ImageRef),
		CreatedAt:   e.CreatedAt.UTC().Format(createdAtLayout),
		Expanded:    st.ExpandedID == e.ID,
		ExpandLink:  ToggleExpand(st, e.ID).Link(),
		EditLink:    edit.Link(),
		DeleteLink:  del.Link(),
		DeleteURL:   "/entries/" + strconv.FormatInt(e.ID, 10) + "/delete",
	}
}
