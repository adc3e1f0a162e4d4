package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkup/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗      ██╗   ██╗██████╗
 ██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝      ██║   ██║██╔══██╗
 ██║     ███████║█████╗  ██║     █████╔╝ █████╗██║   ██║██████╔╝
 ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗ ╚════╝██║   ██║██╔═══╝
 ╚██████╗██║  ██║███████╗╚██████╗██║  ██╗      ╚██████╔╝██║
  ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝       ╚═════╝ ╚═╝`

// RenderBanner returns the banner in the primary color. Narrow terminals
// get the letter-spaced name instead.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(spaced("CHECK-UP"))
	}
	return style.Render(bannerArt)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
