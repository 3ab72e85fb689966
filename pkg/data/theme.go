package data

type Theme string

const (
	ThemeLight Theme = ""
	ThemeDark  Theme = "dark-mode"

	themeKey = "theme"
)

func ParseTheme(s string) Theme {
	switch s {
	case string(ThemeDark), "dark":
		return ThemeDark
	default:
		return ThemeLight
	}
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t.IsDark() {
		return "dark"
	}
	return "light"
}
