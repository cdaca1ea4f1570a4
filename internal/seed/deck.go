// Package seed loads card decks and writes them to the catalog.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

//go:embed default_deck.yaml
var defaultDeck []byte

const (
	maxCodeLen  = 32
	maxTitleLen = 255
)

// Deck is a catalog definition file.
type Deck struct {
	Version int        `yaml:"version"`
	Cards   []DeckCard `yaml:"cards"`
}

// DeckCard is one card of a deck file.
type DeckCard struct {
	Code        string `yaml:"code"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

// Parse decodes and validates a deck. Unknown keys are rejected so typos in
// hand-edited files surface early.
func Parse(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed: deck is empty")
		}
		return nil, fmt.Errorf("seed: parse deck: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile parses the deck at path.
func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open deck: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Default returns the embedded deck.
func Default() *Deck {
	d, err := Parse(bytes.NewReader(defaultDeck))
	if err != nil {
		panic(fmt.Sprintf("seed: embedded deck is invalid: %v", err))
	}
	return d
}

// Validate checks that the deck is non-empty, codes are unique and every card
// has a title.
func (d *Deck) Validate() error {
	if d.Version != 1 {
		return fmt.Errorf("seed: unsupported deck version %d", d.Version)
	}
	if len(d.Cards) == 0 {
		return errors.New("seed: deck has no cards")
	}

	var errs []domain.FieldError
	seen := make(map[string]int, len(d.Cards))
	for i, c := range d.Cards {
		code := strings.TrimSpace(c.Code)

		switch {
		case code == "":
			errs = append(errs, domain.FieldError{Field: domain.ItemField("cards", i, "code"), Message: "required"})
		case len(code) > maxCodeLen:
			errs = append(errs, domain.FieldError{Field: domain.ItemField("cards", i, "code"), Message: "too long"})
		default:
			if prev, dup := seen[code]; dup {
				errs = append(errs, domain.FieldError{Field: domain.ItemField("cards", i, "code"), Message: fmt.Sprintf("duplicate of cards[%d]", prev)})
			}
			seen[code] = i
		}

		title := strings.TrimSpace(c.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: domain.ItemField("cards", i, "title"), Message: "required"})
		} else if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: domain.ItemField("cards", i, "title"), Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToCards converts the deck into catalog cards with fresh ids.
func (d *Deck) ToCards(now time.Time) []domain.Card {
	cards := make([]domain.Card, len(d.Cards))
	for i, c := range d.Cards {
		cards[i] = domain.Card{
			ID:          uuid.New(),
			Code:        strings.TrimSpace(c.Code),
			Title:       strings.TrimSpace(c.Title),
			Description: optionalString(c.Description),
			ImageURL:    optionalString(c.ImageURL),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return cards
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
