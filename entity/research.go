package entity

import "fmt"

// Tool and task names for the built-in research crew.
const (
	LinkupSearchToolName = "linkup_search"

	SearchTaskName   = "search"
	AnalysisTaskName = "analysis"
	WritingTaskName  = "writing"
)

// DefaultResearchCrew builds the fixed three-agent pipeline: a web searcher
// backed by the Linkup tool, an analyst, and a writer. The search task's tool
// call is pinned so the query always goes out with depth "standard" and
// structured output, regardless of what the model would have asked for.
func DefaultResearchCrew(query string) *Crew {
	webSearcher := Agent{
		Name:            "web_searcher",
		Role:            "Web Searcher",
		Goal:            "Find the most relevant information on the web, with source links.",
		Backstory:       "An expert at searching and gathering high-quality online information.",
		AllowDelegation: true,
		Tools:           []string{LinkupSearchToolName},
	}
	researchAnalyst := Agent{
		Name:            "research_analyst",
		Role:            "Research Analyst",
		Goal:            "Analyze and synthesize information from search results.",
		Backstory:       "A critical thinker who transforms raw data into structured insights.",
		AllowDelegation: true,
	}
	technicalWriter := Agent{
		Name:            "technical_writer",
		Role:            "Technical Writer",
		Goal:            "Answer the user's original query in a clear, fact-based, and simple manner using the research analysis. Always include relevant examples and cite sources.",
		Backstory:       "An expert communicator who explains complex topics in simple words for a general audience.",
		AllowDelegation: false,
	}

	searchTask := Task{
		Name:           SearchTaskName,
		Description:    fmt.Sprintf("Search for information about: '%s' using LinkUp.", query),
		ExpectedOutput: "Raw search results with sources (urls).",
		Agent:          webSearcher.Name,
		Tools:          []string{LinkupSearchToolName},
		ToolChoice: &ToolChoice{
			Name: LinkupSearchToolName,
			Arguments: map[string]any{
				"query":       query,
				"depth":       "standard",
				"output_type": "structured",
			},
		},
	}
	analysisTask := Task{
		Name:           AnalysisTaskName,
		Description:    "Analyze the search results, extract important insights, verify facts.",
		ExpectedOutput: "Verified insights with relevant sources.",
		Agent:          researchAnalyst.Name,
		Context:        []string{SearchTaskName},
	}
	writingTask := Task{
		Name:           WritingTaskName,
		Description:    "Create a final markdown response based on analysis.",
		ExpectedOutput: "Well-structured answer with citations and clear explanations.",
		Agent:          technicalWriter.Name,
		Context:        []string{AnalysisTaskName},
	}

	return &Crew{
		Name:    "crew_research",
		Process: ProcessSequential,
		Agents:  []Agent{webSearcher, researchAnalyst, technicalWriter},
		Tasks:   []Task{searchTask, analysisTask, writingTask},
	}
}
