package deckconfig

import (
	"time"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/identity"
	"github.com/goliatone/go-deck/slides"
)

// Built-in decks ship with the module as code-defined examples. They are
// immutable: the registry hands out copies, and the deck service refuses
// update and delete operations against their slugs.

const (
	// ExampleDeckSlug identifies the starter deck.
	ExampleDeckSlug = "example-deck"
	// DesignProcessDeckSlug identifies the AI-assisted design process deck.
	DesignProcessDeckSlug = "cursor-llms-product-designer"
)

var builtinCreatedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func builtinDecks() []*decks.Deck {
	return []*decks.Deck{
		{
			ID:          identity.DeckUUID(ExampleDeckSlug),
			Slug:        ExampleDeckSlug,
			Title:       "Example Deck",
			Description: "A sample presentation deck to demonstrate the system",
			CreatedAt:   builtinCreatedAt,
			Builtin:     true,
		},
		{
			ID:          identity.DeckUUID(DesignProcessDeckSlug),
			Slug:        DesignProcessDeckSlug,
			Title:       "AI Assisted Design Process",
			Description: "How to augment your process with LLMs",
			CreatedAt:   builtinCreatedAt,
			Builtin:     true,
		},
	}
}

// Decks returns the registry of built-in decks. Callers receive fresh copies
// on every call.
func Decks() []*decks.Deck {
	registry := builtinDecks()
	out := make([]*decks.Deck, 0, len(registry))
	for _, deck := range registry {
		out = append(out, deck.Clone())
	}
	return out
}

// Get returns the built-in deck with the given slug, or nil.
func Get(slug string) *decks.Deck {
	for _, deck := range builtinDecks() {
		if deck.Slug == slug {
			return deck.Clone()
		}
	}
	return nil
}

// IsBuiltin reports whether slug names a built-in deck.
func IsBuiltin(slug string) bool {
	return Get(slug) != nil
}

// Content returns the slide sequence for a built-in deck, or nil when the
// slug is not registered. The returned slice is a fresh copy.
func Content(slug string) []slides.Slide {
	var source []slides.Slide
	switch slug {
	case ExampleDeckSlug:
		source = exampleDeckSlides()
	case DesignProcessDeckSlug:
		source = designProcessDeckSlides()
	default:
		return nil
	}
	return source
}

func exampleDeckSlides() []slides.Slide {
	return []slides.Slide{
		slides.NewTitle(1, slides.Title{
			Title:    "Example Deck",
			Subtitle: "A sample presentation deck to demonstrate the system",
		}),
		slides.NewHeadline(2, slides.Headline{
			Headline: "Welcome to the Presentation",
		}),
		slides.NewSection(3, slides.Section{
			Title:       "Introduction",
			Description: "Let's get started with our presentation",
		}),
		slides.NewBulletList(4, slides.BulletList{
			Title: "Key Points",
			Items: []string{
				"This is the first key point",
				"Here's another important point",
				"And a third point to consider",
			},
		}),
		slides.NewQuote(5, slides.Quote{
			Quote:       "The only way to do great work is to love what you do.",
			Attribution: "Steve Jobs",
		}),
	}
}

func designProcessDeckSlides() []slides.Slide {
	hideBottomBar := false

	return []slides.Slide{
		slides.NewTitle(1, slides.Title{
			Title:    "AI Assisted Design Process",
			Subtitle: "How to augment your process with LLMs",
		}),
		slides.NewBulletList(2, slides.BulletList{
			Title: "The Traditional Process is Breaking",
			Items: []string{
				"Figma → Wireframe → Mockup → Prototype → Handoff → Development → Testing",
				"6-12 weeks from concept to working code",
				"We spend weeks perfecting pixels that die in implementation",
				"We debate interactions in static frames",
				"We guess at technical constraints until it's too late",
			},
		}),
		slides.NewIconList(3, slides.IconList{
			Title: "The Philosophy",
			Items: []slides.IconItem{
				{
					Text: "Code first. You need to be working in the material of the end user.",
					Icon: "file-code",
				},
				{
					Text: "Always demo. This means that you're always creating an artifact that generates alignment and can generate a stronger opinion.",
					Icon: "play",
				},
				{
					Text: "High fidelity. Build in production-quality environments from day one. Constraints reveal design opportunities.",
					Icon: "sparkles",
				},
			},
		}),
		slides.NewThreeColumn(4, slides.Columns{
			Title: "The Mental Model",
			Columns: []slides.Column{
				{
					Heading: "Vision Loop (Strategy)",
					Bullets: []string{
						"Define what you're building and why",
						"Create your PRD as a conversation with AI",
						"Refine until the vision is crystal clear",
					},
				},
				{
					Heading: "Build Loop (Reality)",
					Bullets: []string{
						"Establish patterns, components, color tokens",
						"Design system first approach",
						"If you don't have a design system, do it in a lightweight way until it's ready",
						"Generate working components with pixel-perfect specs",
						"Test, fix, and verify against PRD",
					},
				},
				{
					Heading: "Iterate Loop (Fidelity)",
					Bullets: []string{
						"Fine-tuning and doing the final 20%",
						"Iterate on visual language until it's exactly right",
						"Go back and forth between Build and Iterate loops",
					},
				},
			},
		}),
		slides.NewThreeColumn(5, slides.Columns{
			Title: "Vision and Strategy",
			Columns: []slides.Column{
				{
					Heading: "Interview Your AI",
					Bullets: []string{
						"Share all research and current documentation",
						"Instead of writing requirements alone, have a conversation",
						"Ask: 'Here's what I'm thinking... what am I missing?'",
						"'What technical constraints should I consider?'",
						"'How should this work across different states?'",
					},
				},
				{
					Heading: "PRD as Living Document",
					Bullets: []string{
						"Captures core concept and user flows",
						"Documents persistent systems (data, state, currency)",
						"Includes technical requirements and platform decisions",
						"Provides phase breakdown for iterative delivery",
					},
				},
				{
					Heading: "Quick Visual Workflows",
					Bullets: []string{
						"Quick generation of UI - 0 to 1 components",
						"Get a sense of what your PRD is creating",
						"Do this in a lightweight way",
						"Use Figma Make, v0, or Lovable",
					},
				},
			},
		}),
		slides.NewThreeColumn(6, slides.Columns{
			Title: "Building",
			Columns: []slides.Column{
				{
					Heading: "Set Up Your Project",
					Bullets: []string{
						"Get access to your GitHub repository",
						"Get access to the code files and codebase",
						"Set up your IDE",
					},
				},
				{
					Heading: "Set Your Design System",
					Bullets: []string{
						"Set your design system within the project file",
						"Set up components as widgets that can be reused throughout the project",
						"If you change the widget, you're changing all components using that widget",
					},
				},
				{
					Heading: "Use Your PRD to Produce Flows",
					Bullets: []string{
						"Have Cursor or your IDE agent produce entire flows based on your PRD",
						"Create a wireframe or quick version of the entire flow",
						"Example: For a marketplace, set up the complete flow quickly",
					},
				},
			},
		}),
		slides.NewThreeColumn(7, slides.Columns{
			Title: "Iteration",
			Columns: []slides.Column{
				{
					Heading: "Create Examples",
					Bullets: []string{
						"Use v0 AND Figma Make to generate variations",
						"Import both into Figma using html.to.design plugin",
						"Why Both Tools? Different AI models interpret prompts differently",
						"Creating in both gives you more options and reveals different possibilities",
					},
				},
				{
					Heading: "Generate Cursor Prompts with Figma MCP",
					Bullets: []string{
						"Your AI can now see your Figma designs directly",
						"Include links to specific Figma components",
						"Specify explicit pixel-perfect replication requirements",
						"Define target platform specifications (Flutter, Swift, web)",
					},
				},
				{
					Heading: "Refine to Desired Fidelity",
					Bullets: []string{
						"Now you're in familiar territory—push the design to perfection in Figma",
						"But you started from working code, not a blank canvas",
					},
				},
			},
		}),
		slides.NewBulletList(9, slides.BulletList{
			Title: "Quality & Iteration Strategy",
			Items: []string{
				"You'll constantly update your PRD, redesign components at the design system level, and iterate between Figma, code, and PRD",
				"Be prepared for this iterative back and forth as you nail everything down",
				"Critical Testing: Preview builds locally constantly, test component reusability with different content, fix bugs immediately (especially in reusable components)",
				"Your components will be used again—make them solid now",
			},
		}),
		slides.NewBulletList(10, slides.BulletList{
			Title: "Compounding Benefits",
			Items: []string{
				"Faster Validation: Get real feedback from working prototypes in days, not months. Stakeholders can actually use what you're proposing.",
				"Design Systems That Evolve: Every project builds your component library. Document and consolidate components post-project for future reuse.",
				"Designer as Builder: You're no longer dependent on engineering timelines for exploration. You can answer your own 'what if?' questions.",
				"Better Handoffs: When you do hand off to engineering, you're giving them working code with clear specs, not just pretty pictures.",
			},
		}),
		slides.NewTwoColumn(11, slides.Columns{
			Title:         "Mental Model Recap",
			ShowBottomBar: &hideBottomBar,
			Columns: []slides.Column{
				{
					Heading: "Old Way",
					Bullets: []string{
						"Design is a blueprint for someone else to build",
						"Feedback comes after implementation",
						"Designers describe, developers interpret",
						"Working software is the end goal",
					},
				},
				{
					Heading: "New Way",
					Bullets: []string{
						"Design is building in a high-fidelity sandbox",
						"Feedback comes from implementation",
						"Designers demonstrate, developers enhance",
						"Working software is the design tool",
					},
				},
			},
		}),
		slides.NewBulletList(12, slides.BulletList{
			Title: "Getting Started",
			Items: []string{
				"Week 1: Pick an IDE - Choose Visual Studio, Cursor, or anti-gravity, and get connected to either your own GitHub or your company codebase.",
				"Week 2: Choose a Small Feature - Pick something real but contained. A settings screen. A detail view. One complete flow.",
				"Week 3: Run the Full Loop - Vision → Design → Build. Don't skip steps. Learn the rhythm.",
				"Week 4: Reflect and Refine - What worked? What felt clunky? Where did the process break down? Adjust your approach.",
				"Remember: This is a new way of thinking, not just new tools. Give yourself permission to experiment and iterate on the process itself.",
			},
		}),
		slides.NewBulletList(13, slides.BulletList{
			Title: "Key Principles Summary",
			Items: []string{
				"Working beats explaining - Always prefer demos to documentation",
				"Iterate in reality - Design constraints reveal opportunities",
				"AI as collaborator - Interview, don't command",
				"Components as artifacts - Every project builds your library",
				"PRDs as conversations - Living documents, not requirements lockdown",
				"Fidelity from day one - Polish reveals problems early",
				"Loops, not stages - Any loop can restart independently",
			},
		}),
	}
}
