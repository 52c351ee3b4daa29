// Package docs MedVault API.
//
// Documentation of the MedVault health records API.
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//     - multipart/form-data
//
//     Produces:
//     - application/json
//     - application/pdf
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/medvault/medvault-api/models"
)

// swagger:response healthCheckResponse
type healthCheckResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:response loginResponse
type loginResponseWrapper struct {
	// in:body
	Body models.LoginResponse
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
