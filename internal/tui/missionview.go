package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
)

// renderCompare shows both bodies on the chosen dimension with bars scaled
// to the larger, then the comparison sentence.
func (m AppModel) renderCompare() string {
	c := m.State.Compare
	a, b := c.Pair.Slots()
	res := c.Result()

	var out strings.Builder
	out.WriteString("  " + styleQueryLabel.Render("dimension: ") + styleQueryValue.Render(c.Dimension.String()) + "\n\n")

	peak := max(derive.ScaleValue(a, c.Dimension), derive.ScaleValue(b, c.Dimension))
	barWidth := max(min(m.Width-50, 40), 10)
	for slot, body := range []dataset.Body{a, b} {
		marker := "  "
		name := styleRowNormal.Render(body.Name)
		if slot == c.Active {
			marker = styleSelectionIndicator.Render(selectionIndicator) + " "
			name = styleRowSelected.Render(body.Name)
		}
		frac := derive.RelativeSize(derive.ScaleValue(body, c.Dimension), peak, 0, 1)
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(body.Color)).Render(iconFilled)
		out.WriteString(fmt.Sprintf("%s%s %s %s %s\n", marker, dot, padToWidth(name, 12), bar(frac, barWidth),
			styleRowMeta.Render(derive.DisplayValue(body, c.Dimension))))
	}

	out.WriteString("\n  " + styleHeaderTitle.Render(res.String()) + "\n\n")
	for _, body := range []dataset.Body{a, b} {
		out.WriteString("  " + styleDetailLabel.Render(body.Name) + "  " + styleRowMeta.Render(body.Summary()) + "\n")
		for _, f := range body.Facts {
			out.WriteString("    • " + f + "\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

// renderMission shows the component catalog beside the mission's slots,
// running totals, compatibility issues and the last outcome.
func (m AppModel) renderMission() string {
	ms := m.State.Mission
	comps := m.Lib.Components.Load()

	list := rows(len(comps), ms.Cursor, m.bodyHeight(), func(i int, selected bool) string {
		c := comps[i]
		mark := iconEmpty
		if chosen, ok := ms.Mission.Get(slotOf(c)); ok && chosen.ID == c.ID {
			mark = iconFilled
		}
		return row(mark+" "+c.Name, c.Summary(), selected, m.Width/2)
	})

	var side strings.Builder
	for _, s := range derive.Slots {
		name := styleRowMeta.Render("(empty)")
		if c, ok := ms.Mission.Get(s); ok {
			name = styleRowNormal.Render(c.Name)
		}
		side.WriteString(styleDetailLabel.Render(fmt.Sprintf("%-12s", s.String()+":")) + " " + name + "\n")
	}
	st := ms.Stats()
	side.WriteString("\n" + styleDetailLabel.Render(fmt.Sprintf("%-12s", "cost:")) + " " + dataset.FormatCost(st.Cost) + "\n")
	side.WriteString(styleDetailLabel.Render(fmt.Sprintf("%-12s", "reliability:")) + " " +
		fmt.Sprintf("%.1f%%", st.Reliability) + " " + bar(st.Reliability/100, 12) + "\n")
	for _, issue := range ms.Issues() {
		side.WriteString(styleWarning.Render(iconWarning+" "+issue) + "\n")
	}

	side.WriteString("\n")
	switch {
	case ms.Simulating:
		side.WriteString(m.Spinner.View() + " " + styleChatTyping.Render("Launching..."))
	case ms.HasOutcome && ms.Outcome.Success:
		side.WriteString(styleSuccess.Render(iconSuccess+" MISSION SUCCESS") +
			styleRowMeta.Render(fmt.Sprintf(" (%.1f%% success probability)", ms.Outcome.Probability)))
	case ms.HasOutcome:
		side.WriteString(styleDanger.Render(iconFailure+" MISSION FAILED") +
			styleRowMeta.Render(fmt.Sprintf(" (%.1f%% success probability)", ms.Outcome.Probability)))
	case ms.Mission.Complete():
		side.WriteString(styleDetailDim.Render("ready for launch"))
	default:
		side.WriteString(styleDetailDim.Render("fill every slot to launch"))
	}

	left := lipgloss.NewStyle().Width(max(m.Width/2, 20)).Render(list)
	right := styleDetailBorder.Render(side.String())
	if m.Width < WideWidth {
		return lipgloss.JoinVertical(lipgloss.Left, right, list)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// slotOf returns the slot a component fills. Authored components always
// carry a known type.
func slotOf(c dataset.Component) derive.Slot {
	s, _ := derive.SlotFor(c.Type)
	return s
}
