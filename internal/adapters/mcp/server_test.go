package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const config = `<model><intracellular><map species="A" substrate="glucose"/><note/><map species="B" substrate="oxygen"/></intracellular></model>`

func TestHandleGenerate(t *testing.T) {
	s := NewServer(Options{})

	resp, err := s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"config_xml": config,
		"color1":     "red",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Entries, 2)
	assert.Contains(t, resp.Module, "self.species2 =  Text(value='B', layout=text_layout)")
	assert.Contains(t, resp.Module, "self.tab = VBox([")
}

func TestHandleGenerate_Errors(t *testing.T) {
	s := NewServer(Options{})

	_, err := s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.EqualError(t, err, "config_xml is required")

	_, err = s.handleGenerate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"config_xml": "<model/>"})
	assert.ErrorIs(t, err, domain.ErrEntryPointNotFound)
}

func TestHandleList(t *testing.T) {
	s := NewServer(Options{})

	resp, err := s.handleList(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"config_xml": config})

	require.NoError(t, err)
	assert.Equal(t, []domain.MapEntry{
		{Index: 1, Species: "A", Substrate: "glucose"},
		{Index: 2, Species: "B", Substrate: "oxygen"},
	}, resp.Entries)
	assert.Equal(t, 1, resp.Skipped)
}

func TestHandleList_ParseError(t *testing.T) {
	s := NewServer(Options{})

	_, err := s.handleList(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"config_xml": "<a>"})

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "config_xml", parseErr.Path)
}
