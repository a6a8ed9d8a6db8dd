package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/importer"
	"github.com/alexanderramin/whatif/internal/repository"
)

const keyPlanningConfig = "planningConfig"

// Live plan slices, one state key per collection. Keeping slices separate
// lets unrelated edits avoid rewriting the whole dataset and lets the
// encrypted-store decorator protect individual collections.
var planSliceKeys = []string{
	"people",
	"teams",
	"projects",
	"epics",
	"allocations",
	"divisions",
	"roles",
	"releases",
	"projectSolutions",
	"projectSkills",
	"runWorkCategories",
	"teamMembers",
	"divisionLeadershipRoles",
	"unmappedPeople",
	"actualAllocations",
	"iterationSnapshots",
	"goals",
	"goalEpicLinks",
	"goalMilestoneLinks",
	"goalTeamLinks",
}

type planService struct {
	states repository.StateStore
	logger *slog.Logger
}

// NewPlanService creates the live-plan accessor over the given state store.
func NewPlanService(states repository.StateStore, logger *slog.Logger) PlanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &planService{states: states, logger: logger}
}

func (s *planService) Live(ctx context.Context) (domain.PlanningSnapshot, error) {
	var snap domain.PlanningSnapshot
	for _, key := range planSliceKeys {
		raw, err := s.states.Get(ctx, key)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return domain.PlanningSnapshot{}, fmt.Errorf("reading %q: %w", key, err)
		}
		if err := unmarshalSlice(&snap, key, raw); err != nil {
			// A corrupt slice degrades to empty instead of blocking
			// every read of the plan.
			s.logger.WarnContext(ctx, "discarding corrupt plan slice", "key", key, "error", err)
		}
	}

	raw, err := s.states.Get(ctx, keyPlanningConfig)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return domain.PlanningSnapshot{}, fmt.Errorf("reading %q: %w", keyPlanningConfig, err)
	default:
		if err := json.Unmarshal(raw, &snap.Config); err != nil {
			s.logger.WarnContext(ctx, "discarding corrupt plan slice", "key", keyPlanningConfig, "error", err)
			snap.Config = domain.PlanningConfig{}
		}
	}

	snap.Normalize()
	return snap, nil
}

func (s *planService) Import(ctx context.Context, path string) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var snap domain.PlanningSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding plan file %s: %w", path, err)
	}
	snap.Normalize()

	if errs := importer.ValidatePlan(&snap); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, errors.Join(errs...))
	}

	if err := s.Save(ctx, snap); err != nil {
		return nil, err
	}
	return &ImportResult{Counts: snap.Counts()}, nil
}

func (s *planService) Save(ctx context.Context, snap domain.PlanningSnapshot) error {
	snap.Normalize()

	entries := make(map[string][]byte, len(planSliceKeys)+1)
	for _, key := range planSliceKeys {
		data, err := marshalSlice(&snap, key)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", key, err)
		}
		entries[key] = data
	}
	cfg, err := json.Marshal(snap.Config)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", keyPlanningConfig, err)
	}
	entries[keyPlanningConfig] = cfg

	// All slices land in one transaction so a failed import never leaves
	// a half-replaced plan behind.
	if err := s.states.SetBatch(ctx, entries); err != nil {
		return fmt.Errorf("persisting plan: %w", err)
	}
	return nil
}

func (s *planService) Summary(ctx context.Context) (domain.EntityCounts, error) {
	snap, err := s.Live(ctx)
	if err != nil {
		return domain.EntityCounts{}, err
	}
	return snap.Counts(), nil
}

// decodeSlice parses raw into a scratch slice and assigns it only on
// success. json.Unmarshal keeps the elements it decoded before hitting a
// type error, so decoding straight into the snapshot would leave a
// partially populated collection behind.
func decodeSlice[T any](dst *[]T, raw []byte) error {
	var tmp []T
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}
	*dst = tmp
	return nil
}

func unmarshalSlice(snap *domain.PlanningSnapshot, key string, raw []byte) error {
	switch key {
	case "people":
		return decodeSlice(&snap.People, raw)
	case "teams":
		return decodeSlice(&snap.Teams, raw)
	case "projects":
		return decodeSlice(&snap.Projects, raw)
	case "epics":
		return decodeSlice(&snap.Epics, raw)
	case "allocations":
		return decodeSlice(&snap.Allocations, raw)
	case "divisions":
		return decodeSlice(&snap.Divisions, raw)
	case "roles":
		return decodeSlice(&snap.Roles, raw)
	case "releases":
		return decodeSlice(&snap.Releases, raw)
	case "projectSolutions":
		return decodeSlice(&snap.ProjectSolutions, raw)
	case "projectSkills":
		return decodeSlice(&snap.ProjectSkills, raw)
	case "runWorkCategories":
		return decodeSlice(&snap.RunWorkCategories, raw)
	case "teamMembers":
		return decodeSlice(&snap.TeamMembers, raw)
	case "divisionLeadershipRoles":
		return decodeSlice(&snap.DivisionLeadershipRoles, raw)
	case "unmappedPeople":
		return decodeSlice(&snap.UnmappedPeople, raw)
	case "actualAllocations":
		return decodeSlice(&snap.ActualAllocations, raw)
	case "iterationSnapshots":
		return decodeSlice(&snap.IterationSnapshots, raw)
	case "goals":
		return decodeSlice(&snap.Goals, raw)
	case "goalEpicLinks":
		return decodeSlice(&snap.GoalEpicLinks, raw)
	case "goalMilestoneLinks":
		return decodeSlice(&snap.GoalMilestoneLinks, raw)
	case "goalTeamLinks":
		return decodeSlice(&snap.GoalTeamLinks, raw)
	default:
		return fmt.Errorf("unknown plan slice %q", key)
	}
}

func marshalSlice(snap *domain.PlanningSnapshot, key string) ([]byte, error) {
	target, ok := sliceField(snap, key)
	if !ok {
		return nil, fmt.Errorf("unknown plan slice %q", key)
	}
	return json.Marshal(target)
}

func sliceField(snap *domain.PlanningSnapshot, key string) (any, bool) {
	switch key {
	case "people":
		return &snap.People, true
	case "teams":
		return &snap.Teams, true
	case "projects":
		return &snap.Projects, true
	case "epics":
		return &snap.Epics, true
	case "allocations":
		return &snap.Allocations, true
	case "divisions":
		return &snap.Divisions, true
	case "roles":
		return &snap.Roles, true
	case "releases":
		return &snap.Releases, true
	case "projectSolutions":
		return &snap.ProjectSolutions, true
	case "projectSkills":
		return &snap.ProjectSkills, true
	case "runWorkCategories":
		return &snap.RunWorkCategories, true
	case "teamMembers":
		return &snap.TeamMembers, true
	case "divisionLeadershipRoles":
		return &snap.DivisionLeadershipRoles, true
	case "unmappedPeople":
		return &snap.UnmappedPeople, true
	case "actualAllocations":
		return &snap.ActualAllocations, true
	case "iterationSnapshots":
		return &snap.IterationSnapshots, true
	case "goals":
		return &snap.Goals, true
	case "goalEpicLinks":
		return &snap.GoalEpicLinks, true
	case "goalMilestoneLinks":
		return &snap.GoalMilestoneLinks, true
	case "goalTeamLinks":
		return &snap.GoalTeamLinks, true
	default:
		return nil, false
	}
}
