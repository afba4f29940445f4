package rickmorty

import (
	"encoding/json"
	"fmt"
)

// Character mirrors a single record returned by /character and /character/{id}.
type Character struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Species string `json:"species"`
	Type    string `json:"type"`
	Gender  string `json:"gender"`
	Image   string `json:"image"`
}

// PageInfo mirrors the "info" block of a paginated listing.
type PageInfo struct {
	Count int    `json:"count"`
	Pages int    `json:"pages"`
	Next  string `json:"next"`
	Prev  string `json:"prev"`
}

// CharacterPage mirrors the payload returned by /character?page=N.
type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}

// wireCharacter keeps required fields nullable so missing keys can be told
// apart from zero values.
type wireCharacter struct {
	ID      *int    `json:"id"`
	Name    *string `json:"name"`
	Status  *string `json:"status"`
	Species *string `json:"species"`
	Type    string  `json:"type"`
	Gender  *string `json:"gender"`
	Image   *string `json:"image"`
}

type wirePageInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

type wireCharacterPage struct {
	Info    wirePageInfo     `json:"info"`
	Results *[]wireCharacter `json:"results"`
}

func (w wireCharacter) toCharacter() (Character, error) {
	switch {
	case w.ID == nil:
		return Character{}, fmt.Errorf("missing field %q", "id")
	case *w.ID <= 0:
		return Character{}, fmt.Errorf("non-positive id %d", *w.ID)
	case w.Name == nil:
		return Character{}, fmt.Errorf("character %d: missing field %q", *w.ID, "name")
	case w.Status == nil:
		return Character{}, fmt.Errorf("character %d: missing field %q", *w.ID, "status")
	case w.Species == nil:
		return Character{}, fmt.Errorf("character %d: missing field %q", *w.ID, "species")
	case w.Gender == nil:
		return Character{}, fmt.Errorf("character %d: missing field %q", *w.ID, "gender")
	case w.Image == nil:
		return Character{}, fmt.Errorf("character %d: missing field %q", *w.ID, "image")
	}
	return Character{
		ID:      *w.ID,
		Name:    *w.Name,
		Status:  *w.Status,
		Species: *w.Species,
		Type:    w.Type,
		Gender:  *w.Gender,
		Image:   *w.Image,
	}, nil
}

func decodeCharacter(body []byte) (Character, error) {
	var raw wireCharacter
	if err := json.Unmarshal(body, &raw); err != nil {
		return Character{}, err
	}
	return raw.toCharacter()
}

func decodeCharacterPage(body []byte) (CharacterPage, error) {
	var raw wireCharacterPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return CharacterPage{}, err
	}
	if raw.Results == nil {
		return CharacterPage{}, fmt.Errorf("missing field %q", "results")
	}

	page := CharacterPage{
		Info: PageInfo{
			Count: raw.Info.Count,
			Pages: raw.Info.Pages,
			Next:  deref(raw.Info.Next),
			Prev:  deref(raw.Info.Prev),
		},
		Results: make([]Character, 0, len(*raw.Results)),
	}
	seen := make(map[int]struct{}, len(*raw.Results))
	for i, item := range *raw.Results {
		c, err := item.toCharacter()
		if err != nil {
			return CharacterPage{}, fmt.Errorf("results[%d]: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return CharacterPage{}, fmt.Errorf("results[%d]: duplicate id %d", i, c.ID)
		}
		seen[c.ID] = struct{}{}
		page.Results = append(page.Results, c)
	}
	return page, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
