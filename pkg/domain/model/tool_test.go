package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

func TestToolArgs(t *testing.T) {
	args := model.ToolArgs{
		"version": " 1.2.0 ",
		"force":   true,
		"forceS":  "true",
		"run":     float64(42),
		"runS":    "43",
		"frac":    1.5,
		"bad":     []any{"x"},
		"nil":     nil,
	}

	t.Run("string", func(t *testing.T) {
		gt.V(t, gt.R1(args.String("version")).NoError(t)).Equal("1.2.0")
		gt.V(t, gt.R1(args.String("missing")).NoError(t)).Equal("")
		gt.V(t, gt.R1(args.String("nil")).NoError(t)).Equal("")
		gt.V(t, gt.R1(args.String("run")).NoError(t)).Equal("42")
		_, err := args.String("bad")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("required string", func(t *testing.T) {
		_, err := args.RequireString("missing")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("bool", func(t *testing.T) {
		gt.True(t, gt.R1(args.Bool("force")).NoError(t))
		gt.True(t, gt.R1(args.Bool("forceS")).NoError(t))
		gt.False(t, gt.R1(args.Bool("missing")).NoError(t))
		_, err := args.Bool("version")
		gt.Error(t, err)
	})

	t.Run("int64", func(t *testing.T) {
		gt.V(t, gt.R1(args.Int64("run")).NoError(t)).Equal(int64(42))
		gt.V(t, gt.R1(args.Int64("runS")).NoError(t)).Equal(int64(43))
		_, err := args.Int64("frac")
		gt.Error(t, err)
		_, err = args.Int64("version")
		gt.Error(t, err)
	})

	t.Run("int64 out of range", func(t *testing.T) {
		for _, v := range []float64{1e20, -1e20, 9223372036854775807} {
			_, err := model.ToolArgs{"run": v}.Int64("run")
			gt.Error(t, err).Is(types.ErrInvalidOption)
		}
		n := gt.R1(model.ToolArgs{"run": float64(-9223372036854775808)}.Int64("run")).NoError(t)
		gt.V(t, n).Equal(int64(-9223372036854775808))
	})
}

func TestToolResponseIntegrity(t *testing.T) {
	a := model.NewToolResponse("ok", map[string]int{"a": 1})
	b := model.NewToolResponse("different summary", map[string]int{"a": 1})
	c := model.NewToolResponse("ok", map[string]int{"a": 2})

	gt.True(t, a.Success)
	gt.V(t, len(a.Integrity)).Equal(64)
	gt.V(t, a.Integrity).Equal(b.Integrity)
	gt.V(t, a.Integrity).NotEqual(c.Integrity)

	failed := model.NewToolErrorResponse("failed", errors.New("oops"))
	gt.False(t, failed.Success)
	gt.V(t, failed.Error).Equal("oops")
	gt.V(t, failed.Integrity).Equal(model.IntegrityToken(nil))
}
