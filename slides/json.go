package slides

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a stored slide carries a type tag that does
// not match any supported template kind.
var ErrUnknownKind = errors.New("slides: unknown slide kind")

// envelope is the flat wire layout stored under the deck content keys. Every
// template-specific field is optional; Kind decides which ones are read back.
type envelope struct {
	ID              int            `json:"id"`
	Type            Kind           `json:"type"`
	Title           string         `json:"title,omitempty"`
	Subtitle        string         `json:"subtitle,omitempty"`
	Headline        string         `json:"headline,omitempty"`
	Description     string         `json:"description,omitempty"`
	Items           []string       `json:"items,omitempty"`
	Src             string         `json:"src,omitempty"`
	Alt             string         `json:"alt,omitempty"`
	Caption         string         `json:"caption,omitempty"`
	Quote           string         `json:"quote,omitempty"`
	Attribution     string         `json:"attribution,omitempty"`
	BackgroundImage string         `json:"backgroundImage,omitempty"`
	Columns         []Column       `json:"columns,omitempty"`
	ShowBottomBar   *bool          `json:"showBottomBar,omitempty"`
	TimelineItems   []TimelineItem `json:"timelineItems,omitempty"`
	IconItems       []IconItem     `json:"iconItems,omitempty"`
}

// MarshalJSON encodes the slide into the flat envelope layout.
func (s Slide) MarshalJSON() ([]byte, error) {
	env := envelope{ID: s.ID, Type: s.Kind}

	switch s.Kind {
	case KindTitle:
		if v := s.Title; v != nil {
			env.Title = v.Title
			env.Subtitle = v.Subtitle
			env.BackgroundImage = v.BackgroundImage
		}
	case KindHeadline:
		if v := s.Headline; v != nil {
			env.Headline = v.Headline
		}
	case KindSection:
		if v := s.Section; v != nil {
			env.Title = v.Title
			env.Description = v.Description
		}
	case KindBulletList:
		if v := s.BulletList; v != nil {
			env.Title = v.Title
			env.Items = v.Items
		}
	case KindImage:
		if v := s.Image; v != nil {
			env.Title = v.Title
			env.Src = v.Src
			env.Alt = v.Alt
			env.Caption = v.Caption
		}
	case KindQuote:
		if v := s.Quote; v != nil {
			env.Quote = v.Quote
			env.Attribution = v.Attribution
		}
	case KindBlank:
		if v := s.Blank; v != nil {
			env.Title = v.Title
		}
	case KindTwoColumn:
		if v := s.TwoColumn; v != nil {
			env.Title = v.Title
			env.Columns = v.Columns
			env.ShowBottomBar = v.ShowBottomBar
		}
	case KindThreeColumn:
		if v := s.ThreeColumn; v != nil {
			env.Title = v.Title
			env.Columns = v.Columns
		}
	case KindTimeline:
		if v := s.Timeline; v != nil {
			env.Title = v.Title
			env.TimelineItems = v.Items
		}
	case KindIconList:
		if v := s.IconList; v != nil {
			env.Title = v.Title
			env.IconItems = v.Items
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes the flat envelope layout back into the tagged union.
// Fields that do not belong to the tagged kind are dropped, so a payload can
// never produce a slide with an invalid field combination.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	decoded := Slide{ID: env.ID, Kind: env.Type}

	switch env.Type {
	case KindTitle:
		decoded.Title = &Title{Title: env.Title, Subtitle: env.Subtitle, BackgroundImage: env.BackgroundImage}
	case KindHeadline:
		decoded.Headline = &Headline{Headline: env.Headline}
	case KindSection:
		decoded.Section = &Section{Title: env.Title, Description: env.Description}
	case KindBulletList:
		decoded.BulletList = &BulletList{Title: env.Title, Items: env.Items}
	case KindImage:
		decoded.Image = &Image{Title: env.Title, Src: env.Src, Alt: env.Alt, Caption: env.Caption}
	case KindQuote:
		decoded.Quote = &Quote{Quote: env.Quote, Attribution: env.Attribution}
	case KindBlank:
		decoded.Blank = &Blank{Title: env.Title}
	case KindTwoColumn:
		decoded.TwoColumn = &Columns{Title: env.Title, Columns: env.Columns, ShowBottomBar: env.ShowBottomBar}
	case KindThreeColumn:
		decoded.ThreeColumn = &Columns{Title: env.Title, Columns: env.Columns}
	case KindTimeline:
		decoded.Timeline = &Timeline{Title: env.Title, Items: env.TimelineItems}
	case KindIconList:
		decoded.IconList = &IconList{Title: env.Title, Items: env.IconItems}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, env.Type)
	}

	*s = decoded
	return nil
}
