// Package nav tracks which view a visitor is looking at.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type View string

const (
	ViewHome          View = "home"
	ViewProductDetail View = "product"
)

// Section is an anchor on the home view.
type Section string

const (
	SectionHome     Section = "home"
	SectionProducts Section = "products"
	SectionReviews  Section = "reviews"
	SectionAbout    Section = "about"
	SectionContact  Section = "contact"
)

var Sections = []Section{SectionHome, SectionProducts, SectionReviews, SectionAbout, SectionContact}

var ErrInvalidPath = errors.New("invalid view path")

func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// State is the navigation state of one visitor. The zero value is the home
// view with no active section.
type State struct {
	View          View    `json:"view"`
	ProductID     int64   `json:"product_id,omitempty"`
	ActiveSection Section `json:"active_section,omitempty"`
	PendingScroll Section `json:"pending_scroll,omitempty"`
}

func (s *State) current() View {
	if s.View == "" {
		return ViewHome
	}
	return s.View
}

func (s *State) IsHome() bool {
	return s.current() == ViewHome
}

func (s *State) ShowProduct(id int64) {
	s.View = ViewProductDetail
	s.ProductID = id
	s.PendingScroll = ""
}

// Back returns to the home view. A non-empty section is remembered and
// scrolled to once the home view renders; unknown sections are dropped.
func (s *State) Back(section string) {
	s.View = ViewHome
	s.ProductID = 0
	s.PendingScroll = ""
	if sec, ok := ParseSection(section); ok {
		s.PendingScroll = sec
	}
}

// TakeScroll consumes the pending scroll request. The request is dropped
// silently when present reports the section missing from the rendered view.
func (s *State) TakeScroll(present func(Section) bool) (Section, bool) {
	sec := s.PendingScroll
	s.PendingScroll = ""
	if sec == "" || !s.IsHome() {
		return "", false
	}
	if present != nil && !present(sec) {
		return "", false
	}
	return sec, true
}

// SetActiveSection records the section currently scrolled into view. It
// reports false and changes nothing for unknown sections.
func (s *State) SetActiveSection(section string) bool {
	sec, ok := ParseSection(section)
	if !ok {
		return false
	}
	s.ActiveSection = sec
	return true
}

// Path is the route of the current view: "home" or "product/{id}".
func (s *State) Path() string {
	if s.IsHome() {
		return string(ViewHome)
	}
	return fmt.Sprintf("%s/%d", ViewProductDetail, s.ProductID)
}

// ParsePath restores a State from a route produced by Path.
func ParsePath(path string) (State, error) {
	path = strings.Trim(path, "/")
	if path == "" || path == string(ViewHome) {
		return State{View: ViewHome}, nil
	}

	prefix := string(ViewProductDetail) + "/"
	if !strings.HasPrefix(path, prefix) {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(path, prefix), 10, 64)
	if err != nil || id <= 0 {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return State{View: ViewProductDetail, ProductID: id}, nil
}
