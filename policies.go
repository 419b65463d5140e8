package verity

import "context"

const (
	// DefaultPolicySearchMode is sent when ListPoliciesOptions.Mode is empty.
	DefaultPolicySearchMode = "keyword"

	// DefaultPolicyStatus is sent when ListPoliciesOptions.Status is empty.
	DefaultPolicyStatus = "active"

	// DefaultPolicyLimit is sent when ListPoliciesOptions.Limit is 0.
	DefaultPolicyLimit = 50
)

// ListPoliciesOptions defines the filters for searching policies. Every field
// is optional. Mode, Status and Limit fall back to the API defaults and are
// always sent.
type ListPoliciesOptions struct {
	// Query is free text matched against policy titles and bodies ("q").
	Query string

	// Mode selects the search strategy, "keyword" or "semantic".
	Mode string

	// PolicyType filters by type, e.g. "LCD", "NCD", "Article".
	PolicyType string

	// Jurisdiction filters by MAC jurisdiction code.
	Jurisdiction string

	// Payer filters by payer, e.g. "medicare".
	Payer string

	// Status filters by lifecycle status, e.g. "active", "retired".
	Status string

	// Cursor continues a previous listing. Pass the cursor from the previous
	// response's meta unchanged.
	Cursor string

	// Limit is the page size.
	Limit int

	// Include requests optional sections, sent comma-joined.
	Include []string
}

// ListPolicies searches and lists policies.
func (c *Client) ListPolicies(ctx context.Context, opts *ListPoliciesOptions) (*Response[[]PolicyListItem], error) {
	resp, err := c.get(ctx, buildPath("/policies", buildListPoliciesQuery(opts)))
	if err != nil {
		return nil, err
	}
	return processResponse[[]PolicyListItem](resp.StatusCode(), resp.Body())
}

func buildListPoliciesQuery(opts *ListPoliciesOptions) queryParams {
	if opts == nil {
		opts = &ListPoliciesOptions{}
	}

	mode := opts.Mode
	if isBlank(mode) {
		mode = DefaultPolicySearchMode
	}
	status := opts.Status
	if isBlank(status) {
		status = DefaultPolicyStatus
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPolicyLimit
	}

	params := queryParams{}
	params.setString("mode", mode)
	params.setString("status", status)
	params.setInt("limit", limit)
	params.setString("q", opts.Query)
	params.setString("policy_type", opts.PolicyType)
	params.setString("jurisdiction", opts.Jurisdiction)
	params.setString("payer", opts.Payer)
	params.setString("cursor", opts.Cursor)
	params.setStrings("include", opts.Include)
	return params
}

// GetPolicyOptions are the optional parameters of GetPolicy.
type GetPolicyOptions struct {
	// Include requests optional sections, e.g. "criteria", "codes".
	Include []string
}

// GetPolicy fetches a policy by ID.
func (c *Client) GetPolicy(ctx context.Context, policyID string, opts *GetPolicyOptions) (*Response[PolicyDetail], error) {
	if isBlank(policyID) {
		return nil, missingArgument("policy id")
	}

	params := queryParams{}
	if opts != nil {
		params.setStrings("include", opts.Include)
	}

	resp, err := c.get(ctx, buildPath("/policies/"+pathSegment(policyID), params))
	if err != nil {
		return nil, err
	}
	return processResponse[PolicyDetail](resp.StatusCode(), resp.Body())
}

// PolicyChangesOptions filters the policy change feed.
type PolicyChangesOptions struct {
	// Since returns only changes after this ISO 8601 timestamp.
	Since string

	// PolicyID restricts the feed to one policy.
	PolicyID string

	// ChangeType filters by change type, e.g. "created", "updated", "retired".
	ChangeType string

	// Cursor continues a previous page of the feed.
	Cursor string

	// Limit is the page size. Omitted when 0.
	Limit int
}

// ListPolicyChanges returns the policy change feed, newest first.
func (c *Client) ListPolicyChanges(ctx context.Context, opts *PolicyChangesOptions) (*Response[[]PolicyChange], error) {
	params := queryParams{}
	if opts != nil {
		params.setString("since", opts.Since)
		params.setString("policy_id", opts.PolicyID)
		params.setString("change_type", opts.ChangeType)
		params.setString("cursor", opts.Cursor)
		params.setInt("limit", opts.Limit)
	}

	resp, err := c.get(ctx, buildPath("/policies/changes", params))
	if err != nil {
		return nil, err
	}
	return processResponse[[]PolicyChange](resp.StatusCode(), resp.Body())
}

// ComparePoliciesRequest compares how jurisdictions cover a set of procedures.
type ComparePoliciesRequest struct {
	// ProcedureCodes to compare. Required.
	ProcedureCodes []string

	// Jurisdictions to include. The API compares all when empty.
	Jurisdictions []string

	PolicyType string

	IdempotencyKey string
}

// ComparePolicies compares policies across jurisdictions.
func (c *Client) ComparePolicies(ctx context.Context, req ComparePoliciesRequest) (*Response[PolicyComparison], error) {
	if len(nonBlank(req.ProcedureCodes)) == 0 {
		return nil, missingArgument("procedure codes")
	}

	body := requestBody{}
	body.setStrings("procedure_codes", req.ProcedureCodes)
	body.setStrings("jurisdictions", req.Jurisdictions)
	body.setString("policy_type", req.PolicyType)

	resp, err := c.post(ctx, "/policies/compare", body, idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[PolicyComparison](resp.StatusCode(), resp.Body())
}
