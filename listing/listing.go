// Package listing pages through a filtered set of places for the list view.
package listing

import (
	"errors"

	"github.com/anyseat/go-anyseat-places"
)

const DefaultPageSize = 10

// MaxPageSize is the largest number of cards a single page may hold.
const MaxPageSize = 100

var ErrInvalidPage = errors.New("invalid page number")

// Card is a single entry in the list view.
type Card struct {
	*places.Place
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type Page struct {
	Total    int     `json:"total"`
	Places   []*Card `json:"places"`
	Page     int     `json:"page"`
	LastPage int     `json:"last_page"`
	PrevPage int     `json:"prev_page,omitempty"`
	NextPage int     `json:"next_page,omitempty"`
}

// Paginate returns page number 'page' (starting at 1) of 'filtered', 'size' cards per page. A
// 'size' less than 1 means `DefaultPageSize`; sizes above `MaxPageSize` are capped. Pages past
// the end are empty, not errors.
func Paginate(filtered []*places.Place, selected_id string, page int, size int) (*Page, error) {

	if page < 1 {
		return nil, ErrInvalidPage
	}

	if size < 1 {
		size = DefaultPageSize
	}

	if size > MaxPageSize {
		size = MaxPageSize
	}

	total := len(filtered)
	last_page := (total + size - 1) / size

	// Compare page numbers before multiplying so that very large pages can not overflow.
	start := total
	end := total

	if page <= last_page {

		start = (page - 1) * size
		end = start + size

		if end > total {
			end = total
		}
	}

	cards := make([]*Card, 0, end-start)

	for _, pl := range filtered[start:end] {

		c := &Card{
			Place:    pl,
			Label:    pl.Type.Label(),
			Selected: selected_id != "" && pl.Id == selected_id,
		}

		cards = append(cards, c)
	}

	p := &Page{
		Total:    total,
		Places:   cards,
		Page:     page,
		LastPage: last_page,
	}

	if page > 1 {
		p.PrevPage = page - 1
	}

	if page < last_page {
		p.NextPage = page + 1
	}

	return p, nil
}
