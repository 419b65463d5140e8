package verity

import "context"

const (
	// DefaultPayer is sent when a prior-auth request names no payer.
	DefaultPayer = "medicare"

	// DefaultCriteriaPage is the first criteria page.
	DefaultCriteriaPage = 1

	// DefaultCriteriaPerPage is the criteria page size used when none is set.
	DefaultCriteriaPerPage = 25
)

// PriorAuthRequest checks whether procedures require prior authorization.
//
// Payer, CriteriaPage and CriteriaPerPage fall back to DefaultPayer,
// DefaultCriteriaPage and DefaultCriteriaPerPage and are always sent.
type PriorAuthRequest struct {
	// ProcedureCodes to check. Required.
	ProcedureCodes []string

	// DiagnosisCodes refine matching against coverage indications.
	DiagnosisCodes []string

	// State is the two-letter state of service.
	State string

	Payer           string
	CriteriaPage    int
	CriteriaPerPage int

	// IdempotencyKey, when set, is sent as the X-Idempotency-Key header.
	IdempotencyKey string
}

// CheckPriorAuth checks prior authorization requirements.
func (c *Client) CheckPriorAuth(ctx context.Context, req PriorAuthRequest) (*Response[PriorAuthResult], error) {
	if len(nonBlank(req.ProcedureCodes)) == 0 {
		return nil, missingArgument("procedure codes")
	}

	resp, err := c.post(ctx, "/prior-auth/check", buildPriorAuthBody(req), idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[PriorAuthResult](resp.StatusCode(), resp.Body())
}

func buildPriorAuthBody(req PriorAuthRequest) requestBody {
	payer := req.Payer
	if isBlank(payer) {
		payer = DefaultPayer
	}
	page := req.CriteriaPage
	if page <= 0 {
		page = DefaultCriteriaPage
	}
	perPage := req.CriteriaPerPage
	if perPage <= 0 {
		perPage = DefaultCriteriaPerPage
	}

	body := requestBody{}
	body.setStrings("procedure_codes", req.ProcedureCodes)
	body.setString("payer", payer)
	body.setInt("criteria_page", page)
	body.setInt("criteria_per_page", perPage)
	body.setStrings("diagnosis_codes", req.DiagnosisCodes)
	body.setString("state", req.State)
	return body
}

// PriorAuthResearchRequest starts an asynchronous prior-auth research job.
type PriorAuthResearchRequest struct {
	// ProcedureCodes to research. Required.
	ProcedureCodes []string

	DiagnosisCodes []string
	State          string
	Payer          string

	// ClinicalContext is free-text clinical background for the research.
	ClinicalContext string

	IdempotencyKey string
}

// StartPriorAuthResearch starts a research job. The returned result carries the
// research ID and an initial status; poll it with GetPriorAuthResearch.
func (c *Client) StartPriorAuthResearch(ctx context.Context, req PriorAuthResearchRequest) (*Response[PriorAuthResearchResult], error) {
	if len(nonBlank(req.ProcedureCodes)) == 0 {
		return nil, missingArgument("procedure codes")
	}

	body := requestBody{}
	body.setStrings("procedure_codes", req.ProcedureCodes)
	body.setStrings("diagnosis_codes", req.DiagnosisCodes)
	body.setString("state", req.State)
	body.setString("payer", req.Payer)
	body.setString("clinical_context", req.ClinicalContext)

	resp, err := c.post(ctx, "/prior-auth/research", body, idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[PriorAuthResearchResult](resp.StatusCode(), resp.Body())
}

// GetPriorAuthResearch fetches the current state of a research job.
func (c *Client) GetPriorAuthResearch(ctx context.Context, researchID string) (*Response[PriorAuthResearchResult], error) {
	if isBlank(researchID) {
		return nil, missingArgument("research id")
	}

	resp, err := c.get(ctx, "/prior-auth/research/"+pathSegment(researchID))
	if err != nil {
		return nil, err
	}
	return processResponse[PriorAuthResearchResult](resp.StatusCode(), resp.Body())
}
