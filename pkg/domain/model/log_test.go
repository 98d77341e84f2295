package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

func TestParsePayloadObject(t *testing.T) {
	t.Run("keeps top-level key order", func(t *testing.T) {
		obj := gt.R1(model.ParsePayloadObject([]byte(`{"zeta":1,"alpha":{"c":2},"mid":[1,2]}`))).NoError(t)
		gt.V(t, obj.Keys()).Equal([]string{"zeta", "alpha", "mid"})

		raw := gt.R1(json.Marshal(obj)).NoError(t)
		gt.V(t, string(raw)).Equal(`{"zeta":1,"alpha":{"c":2},"mid":[1,2]}`)
	})

	t.Run("nested values are decoded", func(t *testing.T) {
		obj := gt.R1(model.ParsePayloadObject([]byte(`{"a":1,"b":{"c":2}}`))).NoError(t)
		gt.V(t, obj.Map()).Equal(map[string]any{
			"a": float64(1),
			"b": map[string]any{"c": float64(2)},
		})
	})

	t.Run("array is rejected", func(t *testing.T) {
		_, err := model.ParsePayloadObject([]byte(`[1,2]`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidPayload))
	})

	t.Run("null is rejected", func(t *testing.T) {
		_, err := model.ParsePayloadObject([]byte(`null`))
		gt.True(t, errors.Is(err, types.ErrInvalidPayload))
	})

	t.Run("broken JSON is rejected", func(t *testing.T) {
		_, err := model.ParsePayloadObject([]byte(`{"a":}`))
		gt.True(t, errors.Is(err, types.ErrInvalidPayload))
	})

	t.Run("duplicate keys keep the first position", func(t *testing.T) {
		obj := gt.R1(model.ParsePayloadObject([]byte(`{"a":1,"b":2,"a":3}`))).NoError(t)
		gt.V(t, obj.Keys()).Equal([]string{"a", "b"})
		v, _ := obj.Get("a")
		gt.V(t, v).Equal(any(float64(3)))
	})
}

func TestPayloadObjectEmpty(t *testing.T) {
	raw := gt.R1(json.Marshal(model.NewPayloadObject())).NoError(t)
	gt.V(t, string(raw)).Equal("{}")

	var nilObj *model.PayloadObject
	gt.V(t, nilObj.Len()).Equal(0)
	gt.V(t, len(nilObj.Map())).Equal(0)
}

func TestPayloadObjectSetOnZeroValue(t *testing.T) {
	var obj model.PayloadObject
	obj.Set("env", "prod")
	obj.Set("build", 12)
	obj.Set("env", "stg")

	gt.A(t, obj.Keys()).Equal([]string{"env", "build"})
	raw := gt.R1(json.Marshal(&obj)).NoError(t)
	gt.V(t, string(raw)).Equal(`{"env":"stg","build":12}`)
}
