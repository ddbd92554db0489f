package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/lox/pokerhands/poker"
)

// View renders cards and results for the terminal.
type View struct {
	header   lipgloss.Style
	red      lipgloss.Style
	black    lipgloss.Style
	category lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
}

// NewView builds the styles for output written to w. With color off every
// style renders plain text.
func NewView(w io.Writer, color bool) *View {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}

	return &View{
		header:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		red:      renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		black:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		category: renderer.NewStyle().Foreground(lipgloss.Color("12")),
		win:      renderer.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      renderer.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Cards renders cards with hearts and diamonds in red.
func (v *View) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := v.black
		if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
			style = v.red
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}

// Ranked renders a classification with its tie-break fields.
func (v *View) Ranked(rh poker.RankedHand) string {
	return v.category.Render(rh.Category().String()) + " " + describe(rh)
}

// Header renders a section title.
func (v *View) Header(s string) string {
	return v.header.Render(s)
}

// Win renders a winning line.
func (v *View) Win(s string) string {
	return v.win.Render(s)
}

// Tie renders a split result.
func (v *View) Tie(s string) string {
	return v.tie.Render(s)
}

// Table renders rows with the first row as header.
func (v *View) Table(rows [][]string) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Srender()
}

// describe spells out the tie-break fields of a ranked hand.
func describe(rh poker.RankedHand) string {
	switch h := rh.(type) {
	case poker.StraightFlushHand:
		return fmt.Sprintf("(%s high)", h.HighCard.Rank)
	case poker.FourOfAKindHand:
		return fmt.Sprintf("(%ss, kicker %s)", h.Rank, h.Kicker.Rank)
	case poker.FullHouseHand:
		return fmt.Sprintf("(%ss full of %ss)", h.ThreeOfAKindRank, h.PairRank)
	case poker.FlushHand:
		return fmt.Sprintf("(%s)", rankList(h.Kickers[:]))
	case poker.StraightHand:
		return fmt.Sprintf("(%s high)", h.HighCard.Rank)
	case poker.ThreeOfAKindHand:
		return fmt.Sprintf("(%ss, kickers %s)", h.Rank, rankList(h.Kickers[:]))
	case poker.TwoPairHand:
		return fmt.Sprintf("(%ss and %ss, kicker %s)", h.HighPairRank, h.LowPairRank, h.Kicker.Rank)
	case poker.PairHand:
		return fmt.Sprintf("(%ss, kickers %s)", h.Rank, rankList(h.Kickers[:]))
	case poker.HighCardHand:
		return fmt.Sprintf("(%s)", rankList(h.Kickers[:]))
	default:
		return ""
	}
}

func rankList(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Rank.String()
	}
	return strings.Join(parts, " ")
}
