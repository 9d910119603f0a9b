// Command netlify-detect is the detection endpoint packaged as a Netlify
// (AWS Lambda runtime) function.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"thermal-sense/api/internal/app"
	"thermal-sense/api/internal/config"
	"thermal-sense/api/internal/detect"
)

type lambdaHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

func newHandler(svc *detect.Service) lambdaHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		body := []byte(req.Body)
		if req.IsBase64Encoded {
			b, err := base64.StdEncoding.DecodeString(req.Body)
			if err != nil {
				return respond(http.StatusBadRequest, map[string]string{"error": "bad base64 body: " + err.Error()}), nil
			}
			body = b
		}
		out := svc.Handle(ctx, req.HTTPMethod, body)
		return respond(out.Status, out.Body()), nil
	}
}

func respond(status int, v any) events.APIGatewayProxyResponse {
	b, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		b = []byte(`{"error":"encode response"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(b),
	}
}

func main() {
	cfg := config.Load()
	log.Printf("netlify-detect: default llm=%s timeout=%v", cfg.DefaultLLM, cfg.ProviderTimeout)
	lambda.Start(newHandler(app.NewDetectService(cfg)))
}
