package willowkit

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDeck is returned when a deck defines no cards.
	ErrEmptyDeck = errors.New("willowkit: deck has no cards")
	// ErrInvalidColor is returned for colors that are not #RGB, #RGBA,
	// #RRGGBB or #RRGGBBAA.
	ErrInvalidColor = errors.New("willowkit: invalid hex color")
)

// DeckConfig describes a SwipeContainer and the cards pushed onto it.
// Cards are listed bottom first; the last card ends up on top.
//
//	width: 300
//	height: 400
//	background: "#eeeeee"
//	cards:
//	  - name: first
//	    title: Hello
//	    color: "#ffcc00"
//	    shadow: true
type DeckConfig struct {
	Name       string       `yaml:"name"`
	Width      float64      `yaml:"width" validate:"gt=0"`
	Height     float64      `yaml:"height" validate:"gt=0"`
	Background string       `yaml:"background" validate:"omitempty,hexcolor"`
	Cards      []CardConfig `yaml:"cards" validate:"dive"`
}

// CardConfig describes one card.
type CardConfig struct {
	Name         string    `yaml:"name" validate:"required"`
	Title        string    `yaml:"title"`
	Color        string    `yaml:"color" validate:"omitempty,hexcolor"`
	TitleColor   string    `yaml:"title_color" validate:"omitempty,hexcolor"`
	Swipeable    *bool     `yaml:"swipeable"`
	Shadow       bool      `yaml:"shadow"`
	ShadowOffset []float64 `yaml:"shadow_offset" validate:"omitempty,len=2"`
	EntityID     uint32    `yaml:"entity_id"`
}

var (
	deckValidatorOnce sync.Once
	deckValidator     *validator.Validate
)

func deckValidatorInstance() *validator.Validate {
	deckValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		deckValidator = v
	})
	return deckValidator
}

// LoadDeck parses and validates a YAML (or JSON) deck definition.
func LoadDeck(data []byte) (*DeckConfig, error) {
	var cfg DeckConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("willowkit: parse deck: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks sizes, colors, offsets and card name uniqueness.
func (cfg *DeckConfig) Validate() error {
	if len(cfg.Cards) == 0 {
		return ErrEmptyDeck
	}
	if err := deckValidatorInstance().Struct(cfg); err != nil {
		return convertDeckError(err)
	}
	seen := make(map[string]int, len(cfg.Cards))
	for i, c := range cfg.Cards {
		if j, ok := seen[c.Name]; ok {
			return fmt.Errorf("willowkit: invalid deck: cards[%d].name %q duplicates cards[%d]", i, c.Name, j)
		}
		seen[c.Name] = i
	}
	return nil
}

// convertDeckError reports the first failing field with its yaml path.
func convertDeckError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("willowkit: invalid deck: %w", err)
	}
	fe := ves[0]
	field := strings.TrimPrefix(fe.Namespace(), "DeckConfig.")
	if fe.Param() != "" {
		return fmt.Errorf("willowkit: invalid deck: %s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Errorf("willowkit: invalid deck: %s failed %s", field, fe.Tag())
}

// Build creates a container sized to the deck and pushes every card onto it
// in order. face draws card titles; with a nil face titles are skipped.
func (cfg *DeckConfig) Build(face text.Face) (*SwipeContainer, error) {
	name := cfg.Name
	if name == "" {
		name = "deck"
	}
	c := NewSwipeContainer(name, cfg.Width, cfg.Height)
	if cfg.Background != "" {
		col, err := ParseHexColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("willowkit: deck background: %w", err)
		}
		c.SetBackgroundColor(col)
	}
	for i := range cfg.Cards {
		card, err := cfg.Cards[i].build(face)
		if err != nil {
			return nil, fmt.Errorf("willowkit: card %q: %w", cfg.Cards[i].Name, err)
		}
		c.Push(card)
	}
	return c, nil
}

func (cc *CardConfig) build(face text.Face) (*SwipeView, error) {
	card := NewSwipeView(false)
	card.UserInfo = cc.Name
	card.Node().Name = cc.Name
	card.Node().EntityID = cc.EntityID
	if cc.Swipeable != nil {
		card.Swipeable = *cc.Swipeable
	}
	if cc.Color != "" {
		col, err := ParseHexColor(cc.Color)
		if err != nil {
			return nil, err
		}
		card.SetBackgroundColor(col)
	}
	if len(cc.ShadowOffset) == 2 {
		card.SetShadowOffset(Vec2{X: cc.ShadowOffset[0], Y: cc.ShadowOffset[1]})
	}
	card.SetCastsShadow(cc.Shadow)

	if cc.Title != "" && face != nil {
		title := NewLabel(cc.Name+"_title", face)
		title.Text = cc.Title
		title.Align = TextAlignCenter
		if cc.TitleColor != "" {
			col, err := ParseHexColor(cc.TitleColor)
			if err != nil {
				return nil, err
			}
			title.Color = col
		}
		content := card.Content()
		content.AddChild(title.Node())
		// The title tracks the content box, which is sized on push.
		content.OnUpdate = func(float64) {
			if title.Node().Width != content.Width || title.Node().Height != content.Height {
				title.SetFrame(Rect{Width: content.Width, Height: content.Height})
			}
		}
	}
	return card, nil
}

// ParseHexColor parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
