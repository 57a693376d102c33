package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/crewsearch/crewsearch/errors"
	"github.com/crewsearch/crewsearch/internal/mylog"
	"github.com/crewsearch/crewsearch/linkup"
	"github.com/crewsearch/crewsearch/tool"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	lastReq *linkup.SearchRequest
	resp    *linkup.SearchResponse
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, req *linkup.SearchRequest) (*linkup.SearchResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestManager(t *testing.T) {
	m := tool.NewManager(mylog.NewLogger("error", "default"))

	searchTool := tool.NewLinkupSearchTool(&fakeSearcher{resp: &linkup.SearchResponse{}})
	require.NoError(t, m.Register(searchTool))
	require.ErrorIs(t, m.Register(searchTool), errors.ErrInvalidParams)

	got, err := m.GetTool("linkup_search")
	require.NoError(t, err)
	require.Equal(t, searchTool.Name(), got.Name())

	_, err = m.GetTool("unknown")
	require.ErrorIs(t, err, errors.ErrNotFound)

	tools, err := m.GetTools([]string{"linkup_search"})
	require.NoError(t, err)
	require.Len(t, tools, 1)
}

func TestLinkupSearchTool(t *testing.T) {
	searcher := &fakeSearcher{
		resp: &linkup.SearchResponse{
			Results: []linkup.SearchResult{
				{Name: "Result", URL: "https://example.org", Content: "content"},
			},
		},
	}
	searchTool := tool.NewLinkupSearchTool(searcher)

	schema := searchTool.InputSchema()
	require.NotNil(t, schema)
	_, ok := schema.Properties.Get("query")
	require.True(t, ok)
	require.Contains(t, schema.Required, "query")

	out, err := searchTool.Call(context.Background(), json.RawMessage(`{"query":"golang"}`))
	require.NoError(t, err)
	require.Contains(t, out, "https://example.org")

	// omitted fields pick up the crew defaults
	require.Equal(t, "golang", searcher.lastReq.Query)
	require.Equal(t, linkup.DepthStandard, searcher.lastReq.Depth)
	require.Equal(t, linkup.OutputTypeStructured, searcher.lastReq.OutputType)
}

func TestLinkupSearchToolError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.Wrapf(errors.ErrSearch, "boom")}
	searchTool := tool.NewLinkupSearchTool(searcher)

	_, err := searchTool.Call(context.Background(), json.RawMessage(`{"query":"golang"}`))
	require.ErrorIs(t, err, errors.ErrSearch)

	_, err = searchTool.Call(context.Background(), json.RawMessage(`{"query":`))
	require.ErrorIs(t, err, errors.ErrInvalidParams)
}
