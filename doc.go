// Package verity provides a Go client for the Verity API, a lookup service for
// medical codes, Medicare coverage policies, prior authorization requirements
// and spending data.
//
// # Quick Start
//
// Create a client with your API key and look up a code:
//
//	client, err := verity.NewClient(os.Getenv("VERITY_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.LookupCode(context.Background(), "99213", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Data.Description)
//
// Every method returns the API's success envelope, Response[T], whose Data
// field holds the typed payload and whose Meta field is passed through raw.
//
// # Errors
//
// Non-success responses are returned as *APIError carrying the HTTP status,
// the API error code and message. Use errors.Is with ErrUnauthorized,
// ErrNotFound or ErrRateLimited to branch on the common cases:
//
//	_, err := client.GetPolicy(ctx, "L12345", nil)
//	if errors.Is(err, verity.ErrNotFound) {
//	    // ...
//	}
//
// Transport failures (timeouts, cancellation, refused connections) are
// returned wrapped, so errors.Is(err, context.Canceled) works as usual.
//
// # Options
//
// Optional query and body fields are grouped into one options struct per
// operation. Empty fields are never sent:
//
//	resp, err := client.ListPolicies(ctx, &verity.ListPoliciesOptions{
//	    Query:        "knee arthroplasty",
//	    Jurisdiction: "J5",
//	})
//
// Write calls accept an IdempotencyKey; NewIdempotencyKey generates one.
//
// # Configuration
//
// The client is configured with functional options:
//
//	client, err := verity.NewClient(apiKey,
//	    verity.WithLogger(logger),
//	    verity.WithTracerProvider(tp),
//	    verity.WithMetrics(prometheus.DefaultRegisterer),
//	)
//
// or from VERITY_* environment variables with LoadConfig and
// NewClientFromConfig.
package verity
