package fopbridge_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/jrazmi/taskapi/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginatedResponse(t *testing.T) {
	u, err := url.Parse("/api/v1/tasks?search=Buy&sort=title,desc&page=2")
	require.NoError(t, err)

	info := fop.NewPageInfoNumber(fop.NewPageNumber(2, 10), 25, 10)
	resp := fopbridge.NewPaginatedResponse(u, []string{"a"}, info)

	data, _, err := resp.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"records": ["a"],
		"pageInfo": {
			"total": 25, "perPage": 10, "currentPage": 2, "lastPage": 3, "from": 11, "to": 20,
			"links": {
				"first": "/api/v1/tasks?page=1&search=Buy&sort=title%2Cdesc",
				"last":  "/api/v1/tasks?page=3&search=Buy&sort=title%2Cdesc",
				"prev":  "/api/v1/tasks?page=1&search=Buy&sort=title%2Cdesc",
				"next":  "/api/v1/tasks?page=3&search=Buy&sort=title%2Cdesc"
			}
		}
	}`, string(data))
}

func TestNewPaginatedResponse_Empty(t *testing.T) {
	u, err := url.Parse("/tasks")
	require.NoError(t, err)

	resp := fopbridge.NewPaginatedResponse[string](u, nil, fop.NewPageInfoNumber(fop.NewPageNumber(1, 10), 0, 0))

	data, _, err := resp.Encode()
	require.NoError(t, err)

	var body struct {
		Records  []string `json:"records"`
		PageInfo struct {
			LastPage int `json:"lastPage"`
			Links    struct {
				First string  `json:"first"`
				Prev  *string `json:"prev"`
				Next  *string `json:"next"`
			} `json:"links"`
		} `json:"pageInfo"`
	}
	require.NoError(t, json.Unmarshal(data, &body))

	assert.NotNil(t, body.Records)
	assert.Empty(t, body.Records)
	assert.Equal(t, 1, body.PageInfo.LastPage)
	assert.Equal(t, "/tasks?page=1", body.PageInfo.Links.First)
	assert.Nil(t, body.PageInfo.Links.Prev)
	assert.Nil(t, body.PageInfo.Links.Next)
	assert.Contains(t, string(data), `"records":[]`)
}

func TestResponses(t *testing.T) {
	data, _, err := fopbridge.NewRecordID(1, "Task created successfully").Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"message":"Task created successfully"}`, string(data))

	data, _, err = fopbridge.NewMessageResponse("Task deleted successfully").Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, string(data))
}
