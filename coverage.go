package verity

import "context"

// CoverageCriteriaOptions filters coverage criteria blocks. All fields are
// optional.
type CoverageCriteriaOptions struct {
	// Query is free text matched against criteria text ("q").
	Query string

	PolicyID     string
	Section      string
	Jurisdiction string

	// Cursor continues a previous page.
	Cursor string

	// Limit is the page size. Omitted when 0.
	Limit int
}

// GetCoverageCriteria searches coverage criteria blocks.
func (c *Client) GetCoverageCriteria(ctx context.Context, opts *CoverageCriteriaOptions) (*Response[[]CriteriaBlock], error) {
	params := queryParams{}
	if opts != nil {
		params.setString("q", opts.Query)
		params.setString("policy_id", opts.PolicyID)
		params.setString("section", opts.Section)
		params.setString("jurisdiction", opts.Jurisdiction)
		params.setString("cursor", opts.Cursor)
		params.setInt("limit", opts.Limit)
	}

	resp, err := c.get(ctx, buildPath("/coverage/criteria", params))
	if err != nil {
		return nil, err
	}
	return processResponse[[]CriteriaBlock](resp.StatusCode(), resp.Body())
}

// CoverageEvaluationRequest evaluates patient facts against a policy.
type CoverageEvaluationRequest struct {
	// PolicyID of the policy to evaluate. Required.
	PolicyID string

	ProcedureCodes []string
	DiagnosisCodes []string

	// PatientData holds the clinical facts the criteria are evaluated
	// against. Passed through as a JSON object.
	PatientData map[string]any

	IdempotencyKey string
}

// EvaluateCoverage evaluates coverage criteria for a patient.
func (c *Client) EvaluateCoverage(ctx context.Context, req CoverageEvaluationRequest) (*Response[CoverageEvaluationData], error) {
	if isBlank(req.PolicyID) {
		return nil, missingArgument("policy id")
	}

	body := requestBody{}
	body.setString("policy_id", req.PolicyID)
	body.setStrings("procedure_codes", req.ProcedureCodes)
	body.setStrings("diagnosis_codes", req.DiagnosisCodes)
	body.setObject("patient_data", req.PatientData)

	resp, err := c.post(ctx, "/coverage/evaluate", body, idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[CoverageEvaluationData](resp.StatusCode(), resp.Body())
}

// JurisdictionOptions filters the jurisdiction list.
type JurisdictionOptions struct {
	// State returns only jurisdictions covering this two-letter state code.
	State string
}

// ListJurisdictions lists MAC jurisdictions.
func (c *Client) ListJurisdictions(ctx context.Context, opts *JurisdictionOptions) (*Response[[]Jurisdiction], error) {
	params := queryParams{}
	if opts != nil {
		params.setString("state", opts.State)
	}

	resp, err := c.get(ctx, buildPath("/jurisdictions", params))
	if err != nil {
		return nil, err
	}
	return processResponse[[]Jurisdiction](resp.StatusCode(), resp.Body())
}
