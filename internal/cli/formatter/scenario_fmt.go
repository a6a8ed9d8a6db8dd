package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
)

// FormatScenarioList renders scenarios as a table. The active scenario is
// marked in the first column.
func FormatScenarioList(scenarios []*domain.Scenario, activeID string, now time.Time) string {
	headers := []string{"", "Name", "Created", "Expires", "Template", "Edits"}
	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		marker := " "
		name := s.Name
		if s.ID == activeID {
			marker = StyleHeader.Render("▶")
			name = Bold(s.Name)
		}
		template := s.TemplateName
		if template == "" {
			template = Dim("—")
		}
		rows = append(rows, []string{
			marker,
			name,
			RelativeDateFrom(s.CreatedDate, now),
			ExpiryStyled(s.ExpiresAt, now),
			template,
			fmt.Sprintf("%d", s.Metadata.ModificationCount),
		})
	}
	return RenderTable(headers, rows)
}

// FormatScenarioDetail renders a full scenario inspection view.
func FormatScenarioDetail(s *domain.Scenario, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Scenario"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Name:        %s\n", Bold(s.Name))
	if s.Description != "" {
		fmt.Fprintf(&b, "  Description: %s\n", s.Description)
	}
	fmt.Fprintf(&b, "  ID:          %s\n", Dim(s.ID))
	fmt.Fprintf(&b, "  Created:     %s (%s)\n", s.CreatedDate.Format("2006-01-02 15:04"), RelativeDateFrom(s.CreatedDate, now))
	fmt.Fprintf(&b, "  Modified:    %s\n", s.LastModified.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "  Expires:     %s (%s)\n", s.ExpiresAt.Format("2006-01-02"), ExpiryStyled(s.ExpiresAt, now))
	if s.TemplateName != "" {
		fmt.Fprintf(&b, "  Template:    %s\n", s.TemplateName)
	}
	fmt.Fprintf(&b, "  Origin:      %s\n", s.Metadata.CreatedFrom)
	fmt.Fprintf(&b, "  Edits:       %d\n", s.Metadata.ModificationCount)

	counts := s.Data.Counts()
	b.WriteString("\n")
	b.WriteString(Header("Contents"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d projects, %d teams, %d people, %d epics, %d allocations, %d goals\n",
		counts.Projects, counts.Teams, counts.People, counts.Epics, counts.Allocations, counts.Goals)

	return b.String()
}

// FormatTemplateList renders the template catalog as a table.
func FormatTemplateList(templates []domain.ScenarioTemplate) string {
	headers := []string{"ID", "Name", "Category", "Used"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		used := fmt.Sprintf("%d×", t.UsageCount)
		if t.UsageCount == 0 {
			used = Dim("never")
		}
		rows = append(rows, []string{t.ID, Bold(t.Name), t.Category, used})
	}
	return RenderTable(headers, rows)
}

// FormatTemplateDetail renders template configuration including parameter
// defaults.
func FormatTemplateDetail(t *domain.ScenarioTemplate) string {
	var b strings.Builder

	b.WriteString(Header("Template"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  ID:       %s\n", t.ID)
	fmt.Fprintf(&b, "  Name:     %s\n", Bold(t.Name))
	if t.Description != "" {
		fmt.Fprintf(&b, "  About:    %s\n", t.Description)
	}
	fmt.Fprintf(&b, "  Category: %s\n", t.Category)
	fmt.Fprintf(&b, "  Strategy: %s\n", t.Config.Strategy)
	if t.LastUsed != nil {
		fmt.Fprintf(&b, "  Used:     %d× (last %s)\n", t.UsageCount, t.LastUsed.Format("2006-01-02"))
	}

	if len(t.Config.ParameterKeys) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Parameters"))
		b.WriteString("\n")
		for _, key := range t.Config.ParameterKeys {
			if def, ok := t.Config.Defaults[key]; ok {
				fmt.Fprintf(&b, "  %s (default %g)\n", key, def)
			} else {
				fmt.Fprintf(&b, "  %s\n", key)
			}
		}
	}

	return b.String()
}
