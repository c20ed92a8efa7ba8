// Copyright 2026 The Postal Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the address converter over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcodagnone/postal/format"
)

type Server struct {
	reg *format.Registry
}

func New(reg *format.Registry) *Server {
	return &Server{reg: reg}
}

// Router builds the gin engine; separate from Run so tests can drive it
// with httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/api/formats", s.listFormats)
	r.POST("/api/convert", s.convert)
	r.POST("/api/validate", s.validate)

	return r
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) listFormats(ctx *gin.Context) {
	out := make([]gin.H, 0)

	for _, id := range s.reg.List() {
		schema, err := s.reg.Get(id)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

			return
		}

		fields := make([]gin.H, len(schema.Fields))
		for i, f := range schema.Fields {
			fields[i] = gin.H{"name": f.Name, "required": f.Required}
		}

		out = append(out, gin.H{"id": schema.ID, "kind": schema.Kind, "fields": fields})
	}

	ctx.JSON(http.StatusOK, gin.H{"formats": out})
}

type convertRequest struct {
	Raw    string            `json:"raw"`
	Fields map[string]string `json:"fields"`
	From   string            `json:"from"`
	To     string            `json:"to"`
	Strict bool              `json:"strict"`
}

func (s *Server) convert(ctx *gin.Context) {
	var req convertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	var in format.Input

	from := req.From

	if req.Fields != nil {
		in = format.Fields(req.Fields)

		if from == "" || from == "auto" {
			id, ok := s.reg.DetectFields(req.Fields)
			if !ok {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot detect the format of the input", "kind": "detect"})

				return
			}

			from = id
		}
	} else {
		in = format.Text(req.Raw)

		if from == "" || from == "auto" {
			id, ok := s.reg.Detect(req.Raw)
			if !ok {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot detect the format of the input", "kind": "detect"})

				return
			}

			from = id
		}
	}

	rendered, err := s.reg.ConvertWith(format.Parser{Strict: req.Strict}, in, from, req.To)
	if err != nil {
		s.renderError(ctx, err)

		return
	}

	if rendered.IsText() {
		ctx.JSON(http.StatusOK, gin.H{"format": rendered.Format, "text": rendered.Text})

		return
	}

	schema, err := s.reg.Get(rendered.Format)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	data, err := format.EncodeAddress(rendered.Fields, schema)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"format": rendered.Format, "fields": json.RawMessage(data)})
}

type validateRequest struct {
	Raw    string            `json:"raw"`
	Fields map[string]string `json:"fields"`
	Format string            `json:"format"`
	Strict bool              `json:"strict"`
}

func (s *Server) validate(ctx *gin.Context) {
	var req validateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	schema, err := s.reg.Get(req.Format)
	if err != nil {
		s.renderError(ctx, err)

		return
	}

	parser := format.Parser{Strict: req.Strict}

	var addr format.Address

	if req.Fields != nil {
		addr, err = parser.Fields(req.Fields, schema)
	} else {
		addr, err = parser.Text(req.Raw, schema)
	}

	if err != nil {
		s.renderError(ctx, err)

		return
	}

	res := format.Validate(addr, schema)

	ctx.JSON(http.StatusOK, gin.H{"valid": res.Valid(), "issues": res.Issues})
}

// renderError maps the library's error kinds to HTTP statuses: unknown
// format ids are 404, everything wrong with the address itself is 422.
func (s *Server) renderError(ctx *gin.Context, err error) {
	var (
		unknown    *format.UnknownFormatError
		parse      *format.ParseError
		validation *format.ValidationError
		incomplete *format.IncompleteAddressError
	)

	switch {
	case errors.As(err, &unknown):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "unknown_format", "format": unknown.ID})
	case errors.As(err, &parse):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "parse", "fragment": parse.Fragment})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "validation", "issues": validation.Issues})
	case errors.As(err, &incomplete):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "incomplete", "missing": incomplete.Missing})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
