package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/osse101/CharacterForge_Go/configs"
	"github.com/osse101/CharacterForge_Go/internal/catalog"
	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/handler"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/repository"
	"github.com/osse101/CharacterForge_Go/internal/validation"
)

// Supported actions
const (
	ActionAnalyze = "analyze"
	ActionCompute = "compute"
	ActionCrystal = "crystal"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// actionRequest is the function URL body. Action picks which of the
// embedded request shapes is read.
type actionRequest struct {
	Action string `json:"action"`
	handler.AnalyzeRequest
	handler.ComputeRequest
	handler.EvaluateCrystalRequest
}

// app holds the stateless services backed by the embedded catalogs
type app struct {
	glyph   glyph.Service
	potion  potion.Service
	crystal crystal.Service
}

// newApp loads the embedded catalogs once per cold start. Nothing here is
// persisted, so the services share a throwaway memory store and publish no events.
func newApp(ctx context.Context) *app {
	loader := catalog.NewLoader(configs.FS, validation.NewFSSchemaValidator(configs.FS))
	loader.Warm(ctx)

	store := repository.NewMemoryStateStore()
	return &app{
		glyph:   glyph.NewService(loader, store, nil, nil, glyph.Options{}),
		potion:  potion.NewService(loader, store, nil, nil),
		crystal: crystal.NewService(loader.CrystalConfig(ctx), store, nil, nil),
	}
}

func (a *app) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req actionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(http.StatusBadRequest, "invalid JSON: "+err.Error())
	}

	switch req.Action {
	case ActionAnalyze:
		if err := handler.GetValidator().ValidateStruct(req.AnalyzeRequest); err != nil {
			return validationResp(err)
		}
		return okResp(a.glyph.Analyze(ctx, req.Text))

	case ActionCompute:
		if err := handler.GetValidator().ValidateStruct(req.ComputeRequest); err != nil {
			return validationResp(err)
		}
		reactants := req.Reactants
		if reactants == nil {
			reactants = []string{}
		}
		return okResp(a.potion.Compute(ctx, domain.PotionSelection{
			Binder:    req.Binder,
			Catalyst:  req.Catalyst,
			Reactants: reactants,
		}))

	case ActionCrystal:
		if err := handler.GetValidator().ValidateStruct(req.EvaluateCrystalRequest); err != nil {
			return validationResp(err)
		}
		report, err := a.crystal.Evaluate(ctx, req.Rank, req.Refine, req.Tiers)
		if err != nil {
			return serviceErrResp(err)
		}
		return okResp(report)

	case "":
		return errResp(http.StatusBadRequest, "missing action")
	default:
		return errResp(http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
	}
}

func okResp(v interface{}) (events.LambdaFunctionURLResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errResp(http.StatusInternalServerError, "failed to encode response")
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(handler.ErrorResponse{Error: msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func validationResp(err error) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(handler.ValidationErrorResponse{
		Error:  handler.ErrMsgInvalidRequestSummary,
		Fields: handler.FormatValidationError(err),
	})
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusBadRequest, Headers: jsonHeader, Body: string(body)}, nil
}

// serviceErrResp exposes input errors and hides everything else
func serviceErrResp(err error) (events.LambdaFunctionURLResponse, error) {
	switch {
	case errors.Is(err, domain.ErrUnknownRank),
		errors.Is(err, domain.ErrUnknownRefinement),
		errors.Is(err, domain.ErrUnknownQuality),
		errors.Is(err, domain.ErrInvalidInput):
		return errResp(http.StatusBadRequest, err.Error())
	default:
		return errResp(http.StatusInternalServerError, "internal error")
	}
}
