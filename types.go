package verity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FlexInt is an integer that unmarshals from either a JSON number or a numeric
// string. Aggregate counts in spending data arrive both ways depending on
// their size, e.g. {"total_claims": 1200} and {"total_claims": "98000000000"}.
// Empty strings decode as 0.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt(i)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(i)
	return nil
}

// Int64 returns the underlying int64 value.
func (f FlexInt) Int64() int64 {
	return int64(f)
}

// parseAmount parses a decimal string from the API. Absent values yield an
// invalid NullDecimal rather than zero.
func parseAmount(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// CodeLookupData describes a single medical code (CPT, HCPCS, ICD-10) and,
// when requested via include, its pricing and the policies that mention it.
type CodeLookupData struct {
	Code             string        `json:"code"`
	CodeSystem       string        `json:"code_system"`
	Found            bool          `json:"found"`
	Description      string        `json:"description,omitempty"`
	ShortDescription string        `json:"short_description,omitempty"`
	RVU              *RVUData      `json:"rvu,omitempty"`
	Policies         []PolicyMatch `json:"policies,omitempty"`
}

// RVUData carries Medicare Physician Fee Schedule values. Amounts are decimal
// strings; use the accessor methods to get them as decimals.
type RVUData struct {
	WorkRVU          string `json:"work_rvu,omitempty"`
	NonFacilityPrice string `json:"non_facility_price,omitempty"`
	FacilityPrice    string `json:"facility_price,omitempty"`
	Year             *int   `json:"year,omitempty"`
}

// WorkRVUValue parses WorkRVU.
func (r RVUData) WorkRVUValue() (decimal.NullDecimal, error) {
	return parseAmount(r.WorkRVU)
}

// NonFacilityAmount parses NonFacilityPrice.
func (r RVUData) NonFacilityAmount() (decimal.NullDecimal, error) {
	return parseAmount(r.NonFacilityPrice)
}

// FacilityAmount parses FacilityPrice.
func (r RVUData) FacilityAmount() (decimal.NullDecimal, error) {
	return parseAmount(r.FacilityPrice)
}

// BatchCodeLookupData maps each requested code to its lookup result.
type BatchCodeLookupData struct {
	Results map[string]CodeLookupData `json:"results"`
}

// PolicyMatch is a policy referencing a code, with how it treats the code.
type PolicyMatch struct {
	PolicyID      string `json:"policy_id"`
	Title         string `json:"title"`
	PolicyType    string `json:"policy_type"`
	Disposition   string `json:"disposition"`
	Jurisdiction  string `json:"jurisdiction,omitempty"`
	EffectiveDate string `json:"effective_date,omitempty"`
}

// PolicyListItem is a policy summary as returned by the list endpoint.
type PolicyListItem struct {
	PolicyID      string `json:"policy_id"`
	Title         string `json:"title"`
	PolicyType    string `json:"policy_type"`
	Jurisdiction  string `json:"jurisdiction,omitempty"`
	EffectiveDate string `json:"effective_date,omitempty"`
	Status        string `json:"status"`
	Summary       string `json:"summary,omitempty"`
}

// PolicyDetail is a full policy record.
type PolicyDetail struct {
	PolicyListItem
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	PDFURL      string   `json:"pdf_url,omitempty"`
	Specialty   []string `json:"specialty,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// PolicyChange is one entry of the policy change feed. The feed is ordered
// newest first.
type PolicyChange struct {
	PolicyID      string   `json:"policy_id"`
	ChangeType    string   `json:"change_type"`
	ChangeSummary string   `json:"change_summary,omitempty"`
	ChangedFields []string `json:"changed_fields,omitempty"`
	OldVersion    string   `json:"old_version,omitempty"`
	NewVersion    string   `json:"new_version,omitempty"`
	Timestamp     string   `json:"timestamp,omitempty"`
}

// PolicyComparison contrasts how jurisdictions treat a set of procedures.
type PolicyComparison struct {
	ProcedureCodes []string               `json:"procedure_codes"`
	Jurisdictions  []JurisdictionPolicies `json:"jurisdictions"`
	Differences    []string               `json:"differences,omitempty"`
	Summary        string                 `json:"summary,omitempty"`
}

// JurisdictionPolicies lists the policies one jurisdiction applies.
type JurisdictionPolicies struct {
	Jurisdiction string        `json:"jurisdiction"`
	Policies     []PolicyMatch `json:"policies"`
}

// CriteriaBlock is one section of coverage criteria text.
type CriteriaBlock struct {
	BlockID     string   `json:"block_id,omitempty"`
	Text        string   `json:"text,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PolicyID    string   `json:"policy_id,omitempty"`
	PolicyTitle string   `json:"policy_title,omitempty"`
	Section     string   `json:"section,omitempty"`
}

// CoverageEvaluationData is the outcome of evaluating patient facts against a
// policy's criteria.
type CoverageEvaluationData struct {
	Covered           bool       `json:"covered"`
	Confidence        float64    `json:"confidence"`
	Reasons           []string   `json:"reasons"`
	MatchedCriteria   []string   `json:"matched_criteria"`
	UnmatchedCriteria []string   `json:"unmatched_criteria"`
	SkippedCriteria   []string   `json:"skipped_criteria"`
	BlocksEvaluated   int        `json:"blocks_evaluated"`
	BlocksWithoutAST  int        `json:"blocks_without_ast"`
	Policy            *PolicyRef `json:"policy,omitempty"`
}

// PolicyRef identifies a policy.
type PolicyRef struct {
	PolicyID   string `json:"policy_id"`
	Title      string `json:"title"`
	PolicyType string `json:"policy_type"`
}

// Jurisdiction is a Medicare Administrative Contractor jurisdiction.
type Jurisdiction struct {
	MACName          string   `json:"mac_name"`
	MACCode          string   `json:"mac_code,omitempty"`
	JurisdictionCode string   `json:"jurisdiction_code"`
	JurisdictionName string   `json:"jurisdiction_name,omitempty"`
	States           []string `json:"states,omitempty"`
}

// PriorAuthResult reports whether prior authorization is required.
type PriorAuthResult struct {
	PARequired             bool          `json:"pa_required"`
	Confidence             string        `json:"confidence"`
	Reason                 string        `json:"reason"`
	MatchedPolicies        []PolicyMatch `json:"matched_policies,omitempty"`
	DocumentationChecklist []string      `json:"documentation_checklist,omitempty"`
}

// Research job states reported in PriorAuthResearchResult.Status.
const (
	ResearchPending   = "pending"
	ResearchRunning   = "running"
	ResearchCompleted = "completed"
	ResearchFailed    = "failed"
)

// PriorAuthResearchResult is an asynchronous prior-auth research job. Poll
// GetPriorAuthResearch until Done reports true.
type PriorAuthResearchResult struct {
	ResearchID string         `json:"research_id"`
	Status     string         `json:"status"`
	CreatedAt  string         `json:"created_at,omitempty"`
	FinishedAt string         `json:"finished_at,omitempty"`
	PollURL    string         `json:"poll_url,omitempty"`
	Result     map[string]any `json:"result,omitempty"`
	Cost       *ResearchCost  `json:"cost,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (r PriorAuthResearchResult) Done() bool {
	return r.Status == ResearchCompleted || r.Status == ResearchFailed
}

// ResearchCost is the resource usage billed for a research job.
type ResearchCost struct {
	NumSearches     int     `json:"num_searches"`
	NumPages        int     `json:"num_pages"`
	ReasoningTokens int     `json:"reasoning_tokens"`
	TotalDollars    float64 `json:"total_dollars"`
}

// CodeSpendingData aggregates Medicare spending for one code.
type CodeSpendingData struct {
	TotalPaid           string           `json:"total_paid"`
	TotalClaims         FlexInt          `json:"total_claims"`
	UniqueBeneficiaries FlexInt          `json:"unique_beneficiaries"`
	UniqueProviders     FlexInt          `json:"unique_providers"`
	DateRange           *DateRange       `json:"date_range,omitempty"`
	ByYear              []YearlySpending `json:"by_year,omitempty"`
}

// TotalPaidAmount parses TotalPaid.
func (s CodeSpendingData) TotalPaidAmount() (decimal.NullDecimal, error) {
	return parseAmount(s.TotalPaid)
}

// DateRange bounds the data a spending aggregate covers.
type DateRange struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// YearlySpending is one year of a spending aggregate.
type YearlySpending struct {
	Year                int     `json:"year"`
	TotalPaid           string  `json:"total_paid"`
	TotalClaims         FlexInt `json:"total_claims"`
	UniqueBeneficiaries FlexInt `json:"unique_beneficiaries"`
}

// TotalPaidAmount parses TotalPaid.
func (y YearlySpending) TotalPaidAmount() (decimal.NullDecimal, error) {
	return parseAmount(y.TotalPaid)
}

// Webhook endpoint states.
const (
	WebhookActive   = "active"
	WebhookDisabled = "disabled"
)

// WebhookEndpoint is a registered webhook receiver. Secret is only populated
// in the response to CreateWebhook.
type WebhookEndpoint struct {
	ID           int      `json:"id"`
	URL          string   `json:"url"`
	Events       []string `json:"events"`
	Status       string   `json:"status"`
	FailureCount int      `json:"failure_count"`
	Secret       string   `json:"secret,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// WebhookDeletion confirms a webhook endpoint was removed.
type WebhookDeletion struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// WebhookTestResult is the delivery record of a test event.
type WebhookTestResult struct {
	DeliveryID int    `json:"delivery_id"`
	EndpointID int    `json:"endpoint_id"`
	Event      string `json:"event"`
	HTTPStatus *int   `json:"http_status,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}
