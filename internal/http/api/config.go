// Package api holds the huma configuration shared by the server and the
// handler tests.
package api

import (
	"github.com/danielgtaylor/huma/v2"
)

const (
	Title       = "DevOps Assignment API"
	Description = "Backend API for PGAGI DevOps Assignment"
	DocsPath    = "/docs"
	OpenAPIPath = "/openapi"
	SchemasPath = "/schemas"
)

// NewConfig returns the huma config for this service.
//
// huma's default create hook adds a "$schema" property and a describedBy
// Link header to every response body. The endpoints here promise fixed
// bodies, so the hook is dropped.
func NewConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.Info.Description = Description
	cfg.DocsPath = DocsPath
	cfg.OpenAPIPath = OpenAPIPath
	cfg.SchemasPath = SchemasPath
	cfg.CreateHooks = nil
	return cfg
}

// AdvertiseCBOR mirrors every application/json request and response entry
// as application/cbor in the OpenAPI document. The CBOR format itself is
// registered by importing huma's formats/cbor package.
func AdvertiseCBOR(a huma.API) {
	a.OpenAPI().OnAddOperation = append(a.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}
