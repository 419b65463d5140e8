package verity

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPoliciesQuery(t *testing.T) {
	tests := []struct {
		name string
		opts *ListPoliciesOptions
		want url.Values
	}{
		{
			name: "nil options send defaults only",
			opts: nil,
			want: url.Values{
				"mode":   {"keyword"},
				"status": {"active"},
				"limit":  {"50"},
			},
		},
		{
			name: "blank fields are dropped",
			opts: &ListPoliciesOptions{Query: " ", Payer: "", Cursor: "", Include: []string{""}},
			want: url.Values{
				"mode":   {"keyword"},
				"status": {"active"},
				"limit":  {"50"},
			},
		},
		{
			name: "all filters",
			opts: &ListPoliciesOptions{
				Query:        "knee replacement",
				Mode:         "semantic",
				PolicyType:   "LCD",
				Jurisdiction: "J5",
				Payer:        "medicare",
				Status:       "retired",
				Cursor:       "eyJvZmZzZXQiOjUwfQ==",
				Limit:        10,
				Include:      []string{"summary", "codes"},
			},
			want: url.Values{
				"q":            {"knee replacement"},
				"mode":         {"semantic"},
				"policy_type":  {"LCD"},
				"jurisdiction": {"J5"},
				"payer":        {"medicare"},
				"status":       {"retired"},
				"cursor":       {"eyJvZmZzZXQiOjUwfQ=="},
				"limit":        {"10"},
				"include":      {"summary,codes"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, url.Values(buildListPoliciesQuery(tt.opts)))
		})
	}
}

func TestListPolicies(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{
		"success": true,
		"data": [
			{"policy_id": "L33542", "title": "Total Knee Arthroplasty", "policy_type": "LCD", "jurisdiction": "J5", "status": "active"},
			{"policy_id": "A57685", "title": "Billing and Coding: Knee Arthroplasty", "policy_type": "Article", "status": "active", "summary": "Coding guidance"}
		],
		"meta": {"next_cursor": "c2", "total": 2}
	}`)

	resp, err := client.ListPolicies(context.Background(), &ListPoliciesOptions{Query: "knee"})
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/policies", got.Path)
	assert.Equal(t, "limit=50&mode=keyword&q=knee&status=active", got.RawQuery)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "L33542", resp.Data[0].PolicyID)
	assert.Equal(t, "Coding guidance", resp.Data[1].Summary)

	var meta struct {
		NextCursor string `json:"next_cursor"`
	}
	require.NoError(t, resp.DecodeMeta(&meta))
	assert.Equal(t, "c2", meta.NextCursor)
}

func TestGetPolicy(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{
		"success": true,
		"data": {
			"policy_id": "L33542",
			"title": "Total Knee Arthroplasty",
			"policy_type": "LCD",
			"jurisdiction": "J5",
			"effective_date": "2024-01-01",
			"status": "active",
			"description": "Criteria for TKA",
			"version": "R7",
			"pdf_url": "https://example.com/L33542.pdf",
			"specialty": ["Orthopedics"],
			"keywords": ["knee", "arthroplasty"]
		}
	}`)

	resp, err := client.GetPolicy(context.Background(), "L33542", &GetPolicyOptions{Include: []string{"criteria"}})
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, "/policies/L33542", got.Path)
	assert.Equal(t, "include=criteria", got.RawQuery)

	assert.Equal(t, PolicyDetail{
		PolicyListItem: PolicyListItem{
			PolicyID:      "L33542",
			Title:         "Total Knee Arthroplasty",
			PolicyType:    "LCD",
			Jurisdiction:  "J5",
			EffectiveDate: "2024-01-01",
			Status:        "active",
		},
		Description: "Criteria for TKA",
		Version:     "R7",
		PDFURL:      "https://example.com/L33542.pdf",
		Specialty:   []string{"Orthopedics"},
		Keywords:    []string{"knee", "arthroplasty"},
	}, resp.Data)
}

func TestGetPolicy_NoOptions(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{"success":true,"data":{"policy_id":"L1"}}`)

	_, err := client.GetPolicy(context.Background(), "L1", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).RawQuery)
}

func TestGetPolicy_EscapesID(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{"success":true,"data":{}}`)

	_, err := client.GetPolicy(context.Background(), "A/B 1", nil)
	require.NoError(t, err)
	assert.Equal(t, "/policies/A%2FB%201", rec.last(t).EscapedPath)
}

func TestGetPolicy_BlankID(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{}`)

	_, err := client.GetPolicy(context.Background(), " ", nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Zero(t, rec.count())
}

func TestListPolicyChanges(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{
		"success": true,
		"data": [
			{"policy_id": "L33542", "change_type": "updated", "changed_fields": ["criteria"], "old_version": "R6", "new_version": "R7", "timestamp": "2026-02-01T00:00:00Z"},
			{"policy_id": "L30000", "change_type": "retired", "timestamp": "2026-01-15T00:00:00Z"}
		]
	}`)

	resp, err := client.ListPolicyChanges(context.Background(), &PolicyChangesOptions{
		Since:      "2026-01-01T00:00:00Z",
		ChangeType: "updated",
		Limit:      25,
	})
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, "/policies/changes", got.Path)
	query, err := url.ParseQuery(got.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"since":       {"2026-01-01T00:00:00Z"},
		"change_type": {"updated"},
		"limit":       {"25"},
	}, query)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, []string{"criteria"}, resp.Data[0].ChangedFields)
	assert.Equal(t, "retired", resp.Data[1].ChangeType)
}

func TestListPolicyChanges_NoOptions(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{"success":true,"data":[]}`)

	resp, err := client.ListPolicyChanges(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).RawQuery)
	assert.Empty(t, resp.Data)
}

func TestComparePolicies(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{
		"success": true,
		"data": {
			"procedure_codes": ["27447"],
			"jurisdictions": [
				{"jurisdiction": "J5", "policies": [{"policy_id": "L33542", "title": "TKA", "policy_type": "LCD", "disposition": "covered"}]},
				{"jurisdiction": "JH", "policies": []}
			],
			"differences": ["JH has no LCD for 27447"]
		}
	}`)

	resp, err := client.ComparePolicies(context.Background(), ComparePoliciesRequest{
		ProcedureCodes: []string{"27447"},
		Jurisdictions:  []string{"J5", "JH"},
	})
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/policies/compare", got.Path)
	assert.JSONEq(t, `{"procedure_codes":["27447"],"jurisdictions":["J5","JH"]}`, string(got.Body))

	require.Len(t, resp.Data.Jurisdictions, 2)
	assert.Equal(t, "L33542", resp.Data.Jurisdictions[0].Policies[0].PolicyID)
	assert.Equal(t, []string{"JH has no LCD for 27447"}, resp.Data.Differences)
}

func TestComparePolicies_MinimalBody(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{"success":true,"data":{"procedure_codes":["27447"],"jurisdictions":[]}}`)

	_, err := client.ComparePolicies(context.Background(), ComparePoliciesRequest{
		ProcedureCodes: []string{"27447"},
		Jurisdictions:  []string{" "},
	})
	require.NoError(t, err)

	got := rec.last(t)
	assert.JSONEq(t, `{"procedure_codes":["27447"]}`, string(got.Body))
	_, present := got.Header[IdempotencyKeyHeader]
	assert.False(t, present)
}

func TestComparePolicies_RequiresProcedureCodes(t *testing.T) {
	client, rec := newRecordingServer(t, http.StatusOK, `{}`)

	_, err := client.ComparePolicies(context.Background(), ComparePoliciesRequest{Jurisdictions: []string{"J5"}})
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Zero(t, rec.count())
}
