// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult contains the result of a successful parse.
type ParseResult[T any] struct {
	// Value is the decoded Go struct.
	Value *T

	// Unified is the unified CUE value.
	Unified cue.Value
}

// ParseAndDecode compiles CUE source data, unifies it with the schema definition
// at schemaPath and decodes the result into T.
func ParseAndDecode[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)
	filename := options.displayName()

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	return unifyAndDecode[T](ctx, schema, userValue, schemaPath, options)
}

// DecodeValue validates an already-decoded Go value (typically the generic
// map produced by a YAML or TOML decoder) against the schema definition at
// schemaPath and decodes the result into T.
func DecodeValue[T any](schema string, data any, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)

	ctx := cuecontext.New()
	userValue := ctx.Encode(data)
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), options.displayName())
	}

	return unifyAndDecode[T](ctx, schema, userValue, schemaPath, options)
}

// Validate checks a CUE value against the schema definition without decoding.
// It returns the unified value so callers can decode into something other than
// a struct (config loading decodes into a map for Viper).
func Validate(schema string, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	options := applyOptions(opts)
	filename := options.displayName()

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()
	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), filename)
	}

	return unify(ctx, schema, userValue, schemaPath, options)
}

func unifyAndDecode[T any](ctx *cue.Context, schema string, userValue cue.Value, schemaPath string, options parseOptions) (*ParseResult[T], error) {
	unified, err := unify(ctx, schema, userValue, schemaPath, options)
	if err != nil {
		return nil, err
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, options.displayName())
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

func unify(ctx *cue.Context, schema string, userValue cue.Value, schemaPath string, options parseOptions) (cue.Value, error) {
	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, FormatError(err, options.displayName())
	}

	return unified, nil
}

func applyOptions(opts []Option) parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
