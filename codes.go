package verity

import "context"

// LookupCodeOptions are the optional filters for LookupCode. All fields are
// optional; the zero value performs a fuzzy lookup across code systems.
type LookupCodeOptions struct {
	// CodeSystem restricts the lookup to one code system, e.g. "CPT",
	// "HCPCS" or "ICD10".
	CodeSystem string

	// Jurisdiction limits policy matches to a MAC jurisdiction code, e.g. "J5".
	Jurisdiction string

	// Include requests optional sections of the result: "rvu", "policies".
	// Sent comma-joined.
	Include []string

	// DisableFuzzy turns off fuzzy code matching, which the API applies by
	// default.
	DisableFuzzy bool
}

// LookupCode looks up a medical code.
//
//	resp, err := client.LookupCode(ctx, "99213", &verity.LookupCodeOptions{
//	    Include: []string{"rvu", "policies"},
//	})
func (c *Client) LookupCode(ctx context.Context, code string, opts *LookupCodeOptions) (*Response[CodeLookupData], error) {
	if isBlank(code) {
		return nil, missingArgument("code")
	}

	resp, err := c.get(ctx, buildPath("/codes/lookup", buildLookupQuery(code, opts)))
	if err != nil {
		return nil, err
	}
	return processResponse[CodeLookupData](resp.StatusCode(), resp.Body())
}

func buildLookupQuery(code string, opts *LookupCodeOptions) queryParams {
	if opts == nil {
		opts = &LookupCodeOptions{}
	}

	params := queryParams{}
	params.setString("code", code)
	params.setBool("fuzzy", !opts.DisableFuzzy)
	params.setString("code_system", opts.CodeSystem)
	params.setString("jurisdiction", opts.Jurisdiction)
	params.setStrings("include", opts.Include)
	return params
}

// BatchLookupRequest looks up several codes in one call.
type BatchLookupRequest struct {
	// Codes to look up. Required.
	Codes []string

	CodeSystem   string
	Jurisdiction string
	Include      []string

	// IdempotencyKey, when set, is sent as the X-Idempotency-Key header.
	IdempotencyKey string
}

// BatchLookupCodes looks up several codes at once. Results are keyed by code.
func (c *Client) BatchLookupCodes(ctx context.Context, req BatchLookupRequest) (*Response[BatchCodeLookupData], error) {
	if len(nonBlank(req.Codes)) == 0 {
		return nil, missingArgument("codes")
	}

	body := requestBody{}
	body.setStrings("codes", req.Codes)
	body.setString("code_system", req.CodeSystem)
	body.setString("jurisdiction", req.Jurisdiction)
	body.setStrings("include", req.Include)

	resp, err := c.post(ctx, "/codes/batch", body, idempotencyHeaders(req.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return processResponse[BatchCodeLookupData](resp.StatusCode(), resp.Body())
}
