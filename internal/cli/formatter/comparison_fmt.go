package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/whatif/internal/compare"
	"github.com/alexanderramin/whatif/internal/domain"
)

// FormatComparison renders the full scenario-vs-live delta report.
func FormatComparison(c domain.ScenarioComparison) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Scenario vs Live: %s", c.ScenarioName)))
	b.WriteString("\n")

	if c.Summary.TotalChanges == 0 {
		b.WriteString("  No differences.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  Overall impact: %s\n", ImpactIndicator(c.Summary.ImpactLevel))
	fmt.Fprintf(&b, "  Total changes:  %d", c.Summary.TotalChanges)
	b.WriteString(formatCategoryBreakdown(c.Summary.CategorizedChanges))
	b.WriteString("\n")

	if section := formatFinancial(c.FinancialImpact); section != "" {
		b.WriteString("\n")
		b.WriteString(section)
	}
	if section := formatResources(c.ResourceImpact); section != "" {
		b.WriteString("\n")
		b.WriteString(section)
	}
	if section := formatTimeline(c.TimelineImpact); section != "" {
		b.WriteString("\n")
		b.WriteString(section)
	}

	b.WriteString("\n")
	b.WriteString(Header("Changes"))
	b.WriteString("\n")
	b.WriteString(formatChangeTable(c.Changes))

	return b.String()
}

func formatCategoryBreakdown(counts map[domain.ChangeCategory]int) string {
	order := []domain.ChangeCategory{
		domain.CategoryFinancial,
		domain.CategoryResources,
		domain.CategoryTimeline,
		domain.CategoryScope,
		domain.CategoryOrganizational,
	}
	parts := make([]string, 0, len(order))
	for _, cat := range order {
		if n := counts[cat]; n > 0 {
			parts = append(parts, CategoryColor(cat).Render(fmt.Sprintf("%s %d", cat, n)))
		}
	}
	if len(parts) == 0 {
		return "\n"
	}
	return "  (" + strings.Join(parts, ", ") + ")\n"
}

func formatFinancial(fi domain.FinancialImpact) string {
	if len(fi.ProjectCostChanges) == 0 && fi.TotalCostDifference == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Financial Impact"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total cost difference: %s", signedCurrencyStyled(fi.TotalCostDifference))
	if fi.BudgetVariancePct != 0 {
		fmt.Fprintf(&b, " (%+.1f%%)", fi.BudgetVariancePct)
	}
	b.WriteString("\n")
	for _, pc := range fi.ProjectCostChanges {
		fmt.Fprintf(&b, "  %s: %s → %s (%s)\n",
			pc.ProjectName,
			compare.Currency(pc.ScenarioBudget),
			compare.Currency(pc.LiveBudget),
			signedCurrencyStyled(pc.Delta))
	}
	return b.String()
}

func formatResources(ri domain.ResourceImpact) string {
	if len(ri.TeamCapacityChanges) == 0 && ri.PeopleAdded == 0 && ri.PeopleRemoved == 0 && ri.PeopleReallocated == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Resource Impact"))
	b.WriteString("\n")
	if ri.PeopleAdded > 0 || ri.PeopleRemoved > 0 || ri.PeopleReallocated > 0 {
		fmt.Fprintf(&b, "  People: %s added, %s removed, %s reallocated\n",
			StyleGreen.Render(fmt.Sprintf("%d", ri.PeopleAdded)),
			StyleRed.Render(fmt.Sprintf("%d", ri.PeopleRemoved)),
			StyleYellow.Render(fmt.Sprintf("%d", ri.PeopleReallocated)))
	}
	for _, tc := range ri.TeamCapacityChanges {
		fmt.Fprintf(&b, "  %s: %s → %s (%s)\n",
			tc.TeamName,
			compare.Hours(tc.ScenarioCapacity),
			compare.Hours(tc.LiveCapacity),
			compare.SignedHours(tc.Delta))
	}
	return b.String()
}

func formatTimeline(ti domain.TimelineImpact) string {
	if len(ti.ProjectDateChanges) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Timeline Impact"))
	b.WriteString("\n")
	for _, dc := range ti.ProjectDateChanges {
		fmt.Fprintf(&b, "  %s %s: %s → %s (%+d days)\n",
			dc.ProjectName,
			dc.Field,
			compare.Date(dc.ScenarioDate),
			compare.Date(dc.LiveDate),
			dc.DeltaDays)
	}
	return b.String()
}

func formatChangeTable(changes []domain.ScenarioChange) string {
	headers := []string{"Impact", "Category", "Entity", "Change"}
	rows := make([][]string, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, []string{
			ImpactIndicator(ch.Impact),
			CategoryColor(ch.Category).Render(string(ch.Category)),
			fmt.Sprintf("%s %s", ch.EntityType, Bold(ch.EntityName)),
			ch.Description,
		})
	}
	return RenderTable(headers, rows)
}

func signedCurrencyStyled(v float64) string {
	text := compare.SignedCurrency(v)
	switch {
	case v > 0:
		return StyleGreen.Render(text)
	case v < 0:
		return StyleRed.Render(text)
	default:
		return StyleDim.Render(text)
	}
}
