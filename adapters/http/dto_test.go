package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolsField_UnmarshalString(t *testing.T) {
	var req UpdateProjectRequest
	err := json.Unmarshal([]byte(`{"title":"devfolio","tools":"Go, Postgres ,Redis"}`), &req)

	assert.NoError(t, err)
	assert.NotNil(t, req.Tools.Raw)
	assert.Equal(t, "Go, Postgres ,Redis", *req.Tools.Raw)
	assert.Nil(t, req.Tools.List)
}

func TestToolsField_UnmarshalList(t *testing.T) {
	var req UpdateProjectRequest
	err := json.Unmarshal([]byte(`{"title":"devfolio","tools":["Go","Postgres"]}`), &req)

	assert.NoError(t, err)
	assert.Nil(t, req.Tools.Raw)
	assert.Equal(t, []string{"Go", "Postgres"}, req.Tools.List)
}

func TestToolsField_UnmarshalRejectsOtherShapes(t *testing.T) {
	var field ToolsField
	err := json.Unmarshal([]byte(`{"nested":"object"}`), &field)

	assert.Error(t, err)
}

func TestToolsField_MarshalRoundTrip(t *testing.T) {
	raw := "a,b"
	data, err := json.Marshal(ToolsField{Raw: &raw})
	assert.NoError(t, err)
	assert.JSONEq(t, `"a,b"`, string(data))

	data, err = json.Marshal(ToolsField{List: []string{"a", "b"}})
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))
}
