package verity

import "context"

// SpendingOptions narrows a spending aggregate. All fields are optional.
type SpendingOptions struct {
	// StartYear and EndYear bound the aggregated years, inclusive.
	StartYear int
	EndYear   int

	// State restricts the aggregate to one two-letter state code.
	State string
}

// GetSpendingByCode returns Medicare spending aggregated for one code.
func (c *Client) GetSpendingByCode(ctx context.Context, code string, opts *SpendingOptions) (*Response[CodeSpendingData], error) {
	if isBlank(code) {
		return nil, missingArgument("code")
	}

	params := queryParams{}
	params.setString("code", code)
	if opts != nil {
		params.setInt("start_year", opts.StartYear)
		params.setInt("end_year", opts.EndYear)
		params.setString("state", opts.State)
	}

	resp, err := c.get(ctx, buildPath("/spending/by-code", params))
	if err != nil {
		return nil, err
	}
	return processResponse[CodeSpendingData](resp.StatusCode(), resp.Body())
}
