// Package ui is the server-rendered catalog front end. Every operation takes
// the current State and returns the next one; nothing is kept between
// requests except what the State encodes into links.
package ui

import (
	"Cocktail-Catalog/domain"
	"net/url"
	"strconv"
	"strings"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Codes of the success notices that may travel in a link.
const (
	NoticeCreated = "created"
	NoticeUpdated = "updated"
	NoticeDeleted = "deleted"
)

var successNotices = map[string]string{
	NoticeCreated: "Cocktail added.",
	NoticeUpdated: "Cocktail updated.",
	NoticeDeleted: "Cocktail deleted.",
}

type Notice struct {
	Kind string
	Text string
	// Code is set for success notices only; error text never goes in a link.
	Code string
}

func successNotice(code string) (*Notice, bool) {
	text, ok := successNotices[code]
	if !ok {
		return nil, false
	}
	return &Notice{Kind: NoticeSuccess, Text: text, Code: code}, true
}

type State struct {
	Entries []domain.Entry
	Query   string
	// Zero means none for all three ids; the store never assigns 0.
	EditingID  int64
	DeleteID   int64
	ExpandedID int64
	// UploadedRef is the reference of the last image uploaded in this
	// submission, if any.
	UploadedRef string
	Notice      *Notice
}

// Form is the create/edit form as typed by the user.
type Form struct {
	Name        string
	Ingredients string
	Recipe      string
	ImageRef    string
	Comment     string
}

// Request converts the form into an API request. Blank optional fields are
// sent as absent.
func (f Form) Request() domain.EntryRequest {
	req := domain.EntryRequest{
		Name:        strings.TrimSpace(f.Name),
		Ingredients: strings.TrimSpace(f.Ingredients),
		Recipe:      strings.TrimSpace(f.Recipe),
	}
	if v := strings.TrimSpace(f.ImageRef); v != "" {
		req.ImageRef = &v
	}
	if v := strings.TrimSpace(f.Comment); v != "" {
		req.Comment = &v
	}
	return req
}

// FormFromEntry fills the form from an existing entry.
func FormFromEntry(e domain.Entry) Form {
	return Form{
		Name:        e.Name,
		Ingredients: e.Ingredients,
		Recipe:      e.Recipe,
		ImageRef:    deref(e.ImageRef),
		Comment:     deref(e.Comment),
	}
}

// StateFromValues restores the link-carried part of a State. Unparsable ids
// and unknown notice codes are ignored.
func StateFromValues(v url.Values) State {
	st := State{
		Query:      v.Get("q"),
		EditingID:  parseID(v.Get("edit")),
		DeleteID:   parseID(v.Get("delete")),
		ExpandedID: parseID(v.Get("expand")),
	}
	if n, ok := successNotice(v.Get("notice")); ok {
		st.Notice = n
	}
	return st
}

// Values encodes the State into query parameters. Entries and the notice
// are not carried; a notice shows on one page view only.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	setID(v, "edit", s.EditingID)
	setID(v, "delete", s.DeleteID)
	setID(v, "expand", s.ExpandedID)
	return v
}

// Link returns the root page URL that reproduces s.
func (s State) Link() string {
	if q := s.Values().Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

// NoticeLink is Link with the code of n attached. Notices without a code
// are dropped.
func (s State) NoticeLink(n Notice) string {
	if n.Code == "" {
		return s.Link()
	}
	v := s.Values()
	v.Set("notice", n.Code)
	return "/?" + v.Encode()
}

func (s State) find(id int64) (domain.Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entry{}, false
}

func (s State) withNotice(kind, text string) State {
	s.Notice = &Notice{Kind: kind, Text: text}
	return s
}

func (s State) withSuccess(code string) State {
	s.Notice, _ = successNotice(code)
	return s
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func setID(v url.Values, key string, id int64) {
	if id != 0 {
		v.Set(key, strconv.FormatInt(id, 10))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
