package portfolio

const (
	styleTitle    = "color: #00ffff; font-size: 18px; font-weight: bold;"
	styleSubtitle = "color: #40e0ff; font-size: 14px;"
	styleInfo     = "color: #e0e6ed; font-size: 12px;"
	styleTiming   = "color: #00ffff; font-weight: bold;"
)

type consoleLine struct {
	style string
	text  string
}

var developerLines = []consoleLine{
	{styleTitle, "Hey there, fellow developer! 👋"},
	{styleSubtitle, "Impressed by the portfolio?"},
	{styleSubtitle, "Let's connect and build amazing things together!"},
	{styleInfo, "Source: view-source or the repository linked in the footer"},
	{styleSubtitle, "\n🚀 Backend Systems | Microservices | Distributed Architecture"},
}

func (a *App) developerMessage() {
	for _, l := range developerLines {
		a.styled(l.style, l.text)
	}
}

func (a *App) styled(style, text string) {
	if a.env.Console != nil {
		a.env.Console.Styled(style, text)
	}
}
