package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatScenarioList_MarksActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := testutil.NewTestScenario("Budget cut")
	b := testutil.NewTestScenario("Hiring freeze")

	out := FormatScenarioList([]*domain.Scenario{a, b}, a.ID, now)
	assert.Contains(t, out, "Budget cut")
	assert.Contains(t, out, "Hiring freeze")
	assert.Contains(t, out, "▶")
}

func TestFormatScenarioDetail_ShowsExpiryAndCounts(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := testutil.NewTestScenario("Q3 replan", testutil.WithExpiry(now.AddDate(0, 2, 0)))
	s.Description = "halve the platform budget"

	out := FormatScenarioDetail(s, now)
	assert.Contains(t, out, "Q3 replan")
	assert.Contains(t, out, "halve the platform budget")
	assert.Contains(t, out, "2 projects")
	assert.Contains(t, out, "3 people")
}
