package slides

import (
	"fmt"
	"strings"
)

// Kind selects a slide's rendering template and field schema.
type Kind string

const (
	KindTitle       Kind = "title"
	KindHeadline    Kind = "headline"
	KindSection     Kind = "section"
	KindBulletList  Kind = "bulletList"
	KindImage       Kind = "image"
	KindQuote       Kind = "quote"
	KindBlank       Kind = "blank"
	KindTwoColumn   Kind = "twoColumn"
	KindThreeColumn Kind = "threeColumn"
	KindTimeline    Kind = "timeline"
	KindIconList    Kind = "iconList"
)

// Kinds returns every supported slide kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindTitle,
		KindHeadline,
		KindSection,
		KindBulletList,
		KindImage,
		KindQuote,
		KindBlank,
		KindTwoColumn,
		KindThreeColumn,
		KindTimeline,
		KindIconList,
	}
}

// Valid reports whether the kind is one of the supported template kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindTitle, KindHeadline, KindSection, KindBulletList, KindImage,
		KindQuote, KindBlank, KindTwoColumn, KindThreeColumn, KindTimeline, KindIconList:
		return true
	}
	return false
}

// ParseKind converts a raw template identifier into a Kind.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.TrimSpace(value))
	if !kind.Valid() {
		return "", fmt.Errorf("slides: unknown kind %q", value)
	}
	return kind, nil
}

// Slide is a tagged union over the template kinds. Exactly one variant pointer
// is populated, matching Kind; every other variant is nil. Construct slides
// through the New* helpers to keep the pair consistent.
type Slide struct {
	ID   int
	Kind Kind

	Title       *Title
	Headline    *Headline
	Section     *Section
	BulletList  *BulletList
	Image       *Image
	Quote       *Quote
	Blank       *Blank
	TwoColumn   *Columns
	ThreeColumn *Columns
	Timeline    *Timeline
	IconList    *IconList
}

// Title renders a deck-opening slide with an optional subtitle and background.
type Title struct {
	Title           string
	Subtitle        string
	BackgroundImage string
}

// Headline renders a single large statement.
type Headline struct {
	Headline string
}

// Section renders a section divider with an optional description.
type Section struct {
	Title       string
	Description string
}

// BulletList renders a titled list of points.
type BulletList struct {
	Title string
	Items []string
}

// Image renders an image with alt text and an optional caption.
type Image struct {
	Title   string
	Src     string
	Alt     string
	Caption string
}

// Quote renders a quotation with an optional attribution.
type Quote struct {
	Quote       string
	Attribution string
}

// Blank renders an empty canvas with an optional title.
type Blank struct {
	Title string
}

// Column is one vertical band inside a two or three column slide.
type Column struct {
	Heading         string   `json:"heading"`
	Body            string   `json:"body,omitempty"`
	Bullets         []string `json:"bullets,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
}

// Columns renders two or three columns side by side. ShowBottomBar is only
// honoured by the two column layout.
type Columns struct {
	Title         string
	Columns       []Column
	ShowBottomBar *bool
}

// ComparisonMode reports whether the layout should render as a side-by-side
// comparison: exactly two columns carrying bullet lists of equal length.
func (c *Columns) ComparisonMode() bool {
	if c == nil || len(c.Columns) != 2 {
		return false
	}
	left, right := c.Columns[0].Bullets, c.Columns[1].Bullets
	return len(left) > 0 && len(left) == len(right)
}

// TimelineItem is a single milestone on a timeline slide.
type TimelineItem struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Timeline renders an ordered sequence of milestones.
type Timeline struct {
	Title string
	Items []TimelineItem
}

// IconItem pairs a line of text with a named icon.
type IconItem struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// IconList renders a titled list where each entry carries an icon.
type IconList struct {
	Title string
	Items []IconItem
}

// NewTitle builds a title slide.
func NewTitle(id int, v Title) Slide {
	return Slide{ID: id, Kind: KindTitle, Title: &v}
}

// NewHeadline builds a headline slide.
func NewHeadline(id int, v Headline) Slide {
	return Slide{ID: id, Kind: KindHeadline, Headline: &v}
}

// NewSection builds a section divider slide.
func NewSection(id int, v Section) Slide {
	return Slide{ID: id, Kind: KindSection, Section: &v}
}

// NewBulletList builds a bullet list slide.
func NewBulletList(id int, v BulletList) Slide {
	return Slide{ID: id, Kind: KindBulletList, BulletList: &v}
}

// NewImage builds an image slide.
func NewImage(id int, v Image) Slide {
	return Slide{ID: id, Kind: KindImage, Image: &v}
}

// NewQuote builds a quote slide.
func NewQuote(id int, v Quote) Slide {
	return Slide{ID: id, Kind: KindQuote, Quote: &v}
}

// NewBlank builds a blank slide.
func NewBlank(id int, v Blank) Slide {
	return Slide{ID: id, Kind: KindBlank, Blank: &v}
}

// NewTwoColumn builds a two column slide.
func NewTwoColumn(id int, v Columns) Slide {
	return Slide{ID: id, Kind: KindTwoColumn, TwoColumn: &v}
}

// NewThreeColumn builds a three column slide.
func NewThreeColumn(id int, v Columns) Slide {
	return Slide{ID: id, Kind: KindThreeColumn, ThreeColumn: &v}
}

// NewTimeline builds a timeline slide.
func NewTimeline(id int, v Timeline) Slide {
	return Slide{ID: id, Kind: KindTimeline, Timeline: &v}
}

// NewIconList builds an icon list slide.
func NewIconList(id int, v IconList) Slide {
	return Slide{ID: id, Kind: KindIconList, IconList: &v}
}
