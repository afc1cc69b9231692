//go:build !lambda

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

// Without the lambda tag the binary reads one request body from stdin and
// prints the function's response, so the handler can be tried locally:
//
//	echo '{"action":"analyze","text":"Zone"}' | go run ./cmd/lambda
func main() {
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read stdin:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	resp, _ := newApp(ctx).handle(ctx, events.LambdaFunctionURLRequest{Body: string(body)})
	fmt.Println(resp.Body)
	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}
