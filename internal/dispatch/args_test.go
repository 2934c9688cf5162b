package dispatch

import (
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsFloat(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		key     string
		def     float64
		want    float64
		wantErr bool
	}{
		{name: "present", args: Args{"interval": 2.5}, key: "interval", def: 1, want: 2.5},
		{name: "absent uses default", args: Args{}, key: "interval", def: 1, want: 1},
		{name: "nil uses default", args: Args{"interval": nil}, key: "interval", def: 1, want: 1},
		{name: "integer value", args: Args{"interval": 3}, key: "interval", def: 1, want: 3},
		{name: "string rejected", args: Args{"interval": "fast"}, key: "interval", def: 1, wantErr: true},
		{name: "bool rejected", args: Args{"interval": true}, key: "interval", def: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.Float(tt.key, tt.def)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgsInt(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		key     string
		def     int
		want    int
		wantErr string
	}{
		{name: "json number", args: Args{"limit": float64(20)}, key: "limit", def: 5, want: 20},
		{name: "absent uses default", args: Args{}, key: "limit", def: 5, want: 5},
		{name: "negative", args: Args{"limit": float64(-3)}, key: "limit", def: 5, want: -3},
		{name: "fractional rejected", args: Args{"limit": 2.5}, key: "limit", def: 5, wantErr: "whole number"},
		{name: "string rejected", args: Args{"limit": "10"}, key: "limit", def: 5, wantErr: "must be a integer"},
		{name: "too large", args: Args{"limit": float64(1 << 40)}, key: "limit", def: 5, wantErr: "out of range"},
		{name: "too small", args: Args{"limit": float64(-(1 << 40))}, key: "limit", def: 5, wantErr: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.Int(tt.key, tt.def)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgsRequiredInt(t *testing.T) {
	args := Args{"pid": float64(1234)}

	got, err := args.RequiredInt("pid")
	require.NoError(t, err)
	assert.Equal(t, 1234, got)

	_, err = Args{}.RequiredInt("pid")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "Missing required argument 'pid'")

	_, err = Args{"pid": nil}.RequiredInt("pid")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
}

func TestArgsString(t *testing.T) {
	args := Args{"sort_by": "cpu"}

	got, err := args.String("sort_by", "memory")
	require.NoError(t, err)
	assert.Equal(t, "cpu", got)

	got, err = args.String("missing", "memory")
	require.NoError(t, err)
	assert.Equal(t, "memory", got)

	_, err = Args{"sort_by": 7}.String("sort_by", "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "must be a string")
}

func TestArgsBool(t *testing.T) {
	args := Args{"force": true}

	got, err := args.Bool("force", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = args.Bool("missing", false)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = Args{"force": "yes"}.Bool("force", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "must be a boolean")
}

func TestToFloatAcceptedTypes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{name: "float64", in: float64(1.5), want: 1.5, ok: true},
		{name: "float32", in: float32(2), want: 2, ok: true},
		{name: "int", in: int(3), want: 3, ok: true},
		{name: "int32", in: int32(4), want: 4, ok: true},
		{name: "int64", in: int64(5), want: 5, ok: true},
		{name: "string", in: "6", ok: false},
		{name: "nil", in: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
