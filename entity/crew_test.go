package entity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultResearchCrew(t *testing.T) {
	crew := entity.DefaultResearchCrew("What is quantum entanglement?")
	require.NoError(t, crew.Validate())

	require.Equal(t, entity.ProcessSequential, crew.Process)
	require.Len(t, crew.Agents, 3)
	require.Len(t, crew.Tasks, 3)

	require.Equal(t, entity.SearchTaskName, crew.Tasks[0].Name)
	require.Equal(t, entity.AnalysisTaskName, crew.Tasks[1].Name)
	require.Equal(t, entity.WritingTaskName, crew.Tasks[2].Name)

	require.Empty(t, crew.Tasks[0].Context)
	require.Equal(t, []string{entity.SearchTaskName}, crew.Tasks[1].Context)
	require.Equal(t, []string{entity.AnalysisTaskName}, crew.Tasks[2].Context)

	tc := crew.Tasks[0].ToolChoice
	require.NotNil(t, tc)
	require.Equal(t, entity.LinkupSearchToolName, tc.Name)
	require.Equal(t, "What is quantum entanglement?", tc.Arguments["query"])
	require.Equal(t, "standard", tc.Arguments["depth"])
	require.Equal(t, "structured", tc.Arguments["output_type"])

	writer, err := crew.Agent("technical_writer")
	require.NoError(t, err)
	require.False(t, writer.AllowDelegation)
	require.Empty(t, writer.Tools)
}

func TestCrewValidate(t *testing.T) {
	base := func() *entity.Crew {
		return &entity.Crew{
			Name:    "test",
			Process: entity.ProcessSequential,
			Agents:  []entity.Agent{{Name: "a", Role: "A"}},
			Tasks: []entity.Task{
				{Name: "one", Agent: "a"},
				{Name: "two", Agent: "a", Context: []string{"one"}},
			},
		}
	}

	require.NoError(t, base().Validate())

	crew := base()
	crew.Tasks[1].Agent = "missing"
	err := crew.Validate()
	require.ErrorIs(t, err, errors.ErrInvalidConfig)
	require.Contains(t, err.Error(), "unknown agent")

	crew = base()
	crew.Tasks[0].Context = []string{"two"}
	err = crew.Validate()
	require.ErrorIs(t, err, errors.ErrInvalidConfig)
	require.Contains(t, err.Error(), "not an earlier task")

	crew = base()
	crew.Process = "parallel"
	require.ErrorIs(t, crew.Validate(), errors.ErrInvalidConfig)

	crew = base()
	crew.Tasks[1].Name = "one"
	require.ErrorIs(t, crew.Validate(), errors.ErrInvalidConfig)
}

func TestLoadCrewFromFile(t *testing.T) {
	content := `
name: custom_research
agents:
  - name: searcher
    role: Web Searcher
    goal: Find things.
    tools: [linkup_search]
  - name: writer
    role: Writer
    goal: Write things.
tasks:
  - name: search
    description: Search the web.
    agent: searcher
  - name: write
    description: Write it up.
    agent: writer
    context: [search]
`
	filename := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))

	crew, err := entity.LoadCrewFromFile(filename)
	require.NoError(t, err)
	require.Equal(t, "custom_research", crew.Name)
	require.Equal(t, entity.ProcessSequential, crew.Process)
	require.Len(t, crew.Tasks, 2)
	require.Equal(t, []string{"search"}, crew.Tasks[1].Context)

	_, err = entity.LoadCrewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
