package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/data"
)

type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
}

var (
	LightPalette = Palette{
		Primary:    lipgloss.Color("#D62828"),
		Secondary:  lipgloss.Color("#3B4CCA"),
		Success:    lipgloss.Color("#2A9D8F"),
		Warning:    lipgloss.Color("#E9A800"),
		Error:      lipgloss.Color("#C1121F"),
		Info:       lipgloss.Color("#3B4CCA"),
		Muted:      lipgloss.Color("#6C757D"),
		Background: lipgloss.Color("#F4F4F4"),
		Foreground: lipgloss.Color("#2C2C2C"),
		Surface:    lipgloss.Color("#FFFFFF"),
	}

	DarkPalette = Palette{
		Primary:    lipgloss.Color("#FF6B6B"),
		Secondary:  lipgloss.Color("#C792EA"),
		Success:    lipgloss.Color("#C3E88D"),
		Warning:    lipgloss.Color("#FFCB6B"),
		Error:      lipgloss.Color("#F07178"),
		Info:       lipgloss.Color("#82AAFF"),
		Muted:      lipgloss.Color("#546E7A"),
		Background: lipgloss.Color("#263238"),
		Foreground: lipgloss.Color("#EEFFFF"),
		Surface:    lipgloss.Color("#37474F"),
	}
)

// Card background per primary type
var TypeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A77A"),
	"fire":     lipgloss.Color("#EE8130"),
	"water":    lipgloss.Color("#6390F0"),
	"electric": lipgloss.Color("#F7D02C"),
	"grass":    lipgloss.Color("#7AC74C"),
	"ice":      lipgloss.Color("#96D9D6"),
	"fighting": lipgloss.Color("#C22E28"),
	"poison":   lipgloss.Color("#A33EA1"),
	"ground":   lipgloss.Color("#E2BF65"),
	"flying":   lipgloss.Color("#A98FF3"),
	"psychic":  lipgloss.Color("#F95587"),
	"bug":      lipgloss.Color("#A6B91A"),
	"rock":     lipgloss.Color("#B6A136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6F35FC"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#B7B7CE"),
	"fairy":    lipgloss.Color("#D685AD"),
}

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	Current Palette

	TitleStyle        lipgloss.Style
	SubtitleStyle     lipgloss.Style
	TextStyle         lipgloss.Style
	MutedStyle        lipgloss.Style
	StatusLoading     lipgloss.Style
	StatusError       lipgloss.Style
	HelpStyle         lipgloss.Style
	InputStyle        lipgloss.Style
	FocusedInputStyle lipgloss.Style
	OverlayStyle      lipgloss.Style
	CloseStyle        lipgloss.Style
	BadgeStyle        lipgloss.Style
)

func init() {
	Apply(data.ThemeLight)
}

// Apply rebuilds the shared styles for the given theme.
func Apply(theme data.Theme) {
	p := LightPalette
	if theme.IsDark() {
		p = DarkPalette
	}
	Current = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	StatusLoading = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(0, 1)

	OverlayStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(p.Foreground).
		Padding(1, 2)

	// the close control contrasts with the overlay in both themes
	CloseStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1)
}

// TypeColor returns the colour for a type name, falling back to normal.
func TypeColor(typeName string) lipgloss.Color {
	if c, ok := TypeColors[typeName]; ok {
		return c
	}
	return TypeColors["normal"]
}

// CardStyle is the card frame for a record's primary type.
func CardStyle(typeName string, selected bool) lipgloss.Style {
	border := RoundedBorder
	borderColor := TypeColor(typeName)
	if selected {
		border = ThickBorder
		borderColor = Current.Primary
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Background(TypeColor(typeName)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)
}

// Badge renders a type name as a coloured tag.
func Badge(typeName string) string {
	return BadgeStyle.Foreground(TypeColor(typeName)).Background(Current.Surface).Render(typeName)
}
