// Package catalog exposes the character collection as a paginated listing
// plus a by-id lookup behind one interface.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/morty/internal/rickmorty"
)

// FirstPage is the only listing page the screens request.
const FirstPage = 1

var (
	// ErrInvalidPage is returned for a page number below 1.
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidID is returned for an item id below 1.
	ErrInvalidID = errors.New("item id must be a positive integer")
)

// Item is a single listed character. Values are never mutated after fetch.
type Item struct {
	ID      int
	Name    string
	Status  string
	Species string
	Type    string
	Gender  string
	Image   string
}

// ItemPage is one page of the listing in server order.
type ItemPage struct {
	Page       int
	TotalPages int
	TotalCount int
	Items      []Item
}

// Service is the read-only resource API consumed by the screens.
type Service interface {
	ListItems(ctx context.Context, page int) (ItemPage, error)
	GetItemByID(ctx context.Context, id int) (Item, error)
}

// RemoteService forwards to the REST client. It holds no state and is safe
// to share between screens.
type RemoteService struct {
	fetcher rickmorty.CharacterFetcher
}

var _ Service = (*RemoteService)(nil)

// NewService wraps fetcher.
func NewService(fetcher rickmorty.CharacterFetcher) *RemoteService {
	return &RemoteService{fetcher: fetcher}
}

// ListItems returns the given page of the listing.
func (s *RemoteService) ListItems(ctx context.Context, page int) (ItemPage, error) {
	if page < 1 {
		return ItemPage{}, fmt.Errorf("list items: %w", ErrInvalidPage)
	}
	resp, err := s.fetcher.FetchCharacters(ctx, page)
	if err != nil {
		return ItemPage{}, fmt.Errorf("list items page %d: %w", page, err)
	}

	items := make([]Item, len(resp.Results))
	for i, c := range resp.Results {
		items[i] = fromCharacter(c)
	}
	return ItemPage{
		Page:       page,
		TotalPages: resp.Info.Pages,
		TotalCount: resp.Info.Count,
		Items:      items,
	}, nil
}

// GetItemByID returns a single item.
func (s *RemoteService) GetItemByID(ctx context.Context, id int) (Item, error) {
	if id < 1 {
		return Item{}, fmt.Errorf("get item: %w", ErrInvalidID)
	}
	c, err := s.fetcher.FetchCharacter(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return fromCharacter(*c), nil
}

func fromCharacter(c rickmorty.Character) Item {
	return Item{
		ID:      c.ID,
		Name:    c.Name,
		Status:  c.Status,
		Species: c.Species,
		Type:    c.Type,
		Gender:  c.Gender,
		Image:   c.Image,
	}
}
