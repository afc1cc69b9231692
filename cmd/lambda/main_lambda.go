//go:build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(newApp(context.Background()).handle)
}
