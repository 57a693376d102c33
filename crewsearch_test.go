package crewsearch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crewsearch/crewsearch"
	"github.com/crewsearch/crewsearch/config"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/crewsearch/crewsearch/internal/mylog"
	"github.com/crewsearch/crewsearch/internal/mytesting"
	goopenai "github.com/openai/openai-go"
	"github.com/stretchr/testify/suite"
)

type RuntimeTestSuite struct {
	mytesting.Suite
}

func TestRuntime(t *testing.T) {
	suite.Run(t, new(RuntimeTestSuite))
}

type scriptedModel struct {
	calls     int
	responses []string
	err       error
}

func (s *scriptedModel) Complete(_ context.Context, _ goopenai.ChatCompletionNewParams) (*goopenai.ChatCompletion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	text := s.responses[0]
	s.responses = s.responses[1:]
	return &goopenai.ChatCompletion{
		Choices: []goopenai.ChatCompletionChoice{
			{Message: goopenai.ChatCompletionMessage{Content: text}},
		},
	}, nil
}

func (s *RuntimeTestSuite) newLinkupBackend(handler http.HandlerFunc) *config.LinkupConfig {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)

	conf := config.NewLinkupConfig()
	conf.APIKey = "test-key"
	conf.BaseURL = server.URL
	return conf
}

func (s *RuntimeTestSuite) okLinkupBackend() *config.LinkupConfig {
	return s.newLinkupBackend(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"name": "Quantum entanglement", "url": "https://en.wikipedia.org/wiki/Quantum_entanglement", "content": "Correlated particle states."},
			},
		})
	})
}

func (s *RuntimeTestSuite) newRuntime(linkupConf *config.LinkupConfig, model *scriptedModel) *crewsearch.Runtime {
	runtime, err := crewsearch.NewRuntime(
		crewsearch.WithLogger(mylog.NewLogger("error", "default")),
		crewsearch.WithLinkupConfig(linkupConf),
		crewsearch.WithModelClient(model),
	)
	s.Require().NoError(err)
	return runtime
}

func (s *RuntimeTestSuite) TestResearch() {
	model := &scriptedModel{responses: []string{
		"raw search results",
		"verified insights",
		"# Quantum entanglement\n\nAnswer text. Source: https://en.wikipedia.org/wiki/Quantum_entanglement",
	}}
	runtime := s.newRuntime(s.okLinkupBackend(), model)

	out, err := runtime.Research(s, "What is quantum entanglement?")
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Raw)
	s.Require().Contains(out.Raw, "https://")
	s.Require().NotContains(out.Raw, "Error during")
	s.Require().Equal(3, model.calls)
	s.Require().Len(out.TaskOutputs, 3)
}

func (s *RuntimeTestSuite) TestResearchEmptyQuery() {
	runtime := s.newRuntime(s.okLinkupBackend(), &scriptedModel{})

	_, err := runtime.Research(s, "   ")
	s.Require().ErrorIs(err, errors.ErrInvalidParams)
}

func (s *RuntimeTestSuite) TestResearchSearchCredentialFailure() {
	backend := s.newLinkupBackend(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	})
	runtime := s.newRuntime(backend, &scriptedModel{responses: []string{"unused"}})

	_, err := runtime.Research(s, "q")
	s.Require().ErrorIs(err, errors.ErrSearch)
}

func (s *RuntimeTestSuite) TestResearchModelUnreachable() {
	runtime := s.newRuntime(s.okLinkupBackend(), &scriptedModel{err: errors.New("connection refused")})

	_, err := runtime.Research(s, "q")
	s.Require().ErrorIs(err, errors.ErrCrewExecution)
}

// two runtimes with different configs coexist; calls share no state
func (s *RuntimeTestSuite) TestIndependentRuntimes() {
	first, err := s.newRuntime(s.okLinkupBackend(), &scriptedModel{responses: []string{"s", "a", "w"}}).
		Research(s, "first")
	s.Require().NoError(err)

	second, err := s.newRuntime(s.okLinkupBackend(), &scriptedModel{responses: []string{"s", "a", "w"}}).
		Research(s, "second")
	s.Require().NoError(err)

	s.Require().NotEqual(first.RunID, second.RunID)
}
