package meta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateekvishnu/goscript/vm/meta"
)

func TestNewRegistry_PredefinedScalars(t *testing.T) {
	r := meta.NewRegistry()

	require.Equal(t, meta.DescScalar, r.Get(meta.KeyInt64).Kind)
	require.Equal(t, meta.DescNil, r.Get(meta.KeyNil).Kind)
	require.Equal(t, meta.DescUnsafePtr, r.Get(meta.KeyUnsafePtr).Kind)
}

func TestTwoPhaseConstruction_RecursiveStruct(t *testing.T) {
	r := meta.NewRegistry()

	// type Node struct { Next *Node }
	nodeKey := r.NewPlaceholder()
	ptrToNode := r.NewPointerTo(nodeKey)
	r.Fill(nodeKey, meta.Desc{
		Kind: meta.DescStruct,
		Struct: &meta.StructDesc{
			Fields:  []meta.FieldInfo{{Name: "Next", Type: ptrToNode}},
			NameMap: map[string][]int{"Next": {0}},
		},
	})

	d := r.Get(nodeKey)
	require.Equal(t, meta.DescStruct, d.Kind)
	require.Equal(t, ptrToNode, d.Struct.Fields[0].Type)

	ptrDesc := r.Get(ptrToNode)
	require.Equal(t, nodeKey, ptrDesc.PointerToElem)
}

func TestBuildFieldNameMap_EmbeddedPromotionShallowerWins(t *testing.T) {
	r := meta.NewRegistry()

	// type Inner struct { X int }
	innerKey := r.NewStruct([]meta.FieldInfo{{Name: "X", Type: meta.KeyInt}})

	// type Outer struct { Inner; X string }
	// Outer declares its own X directly, so it must win over Inner.X.
	outerFields := []meta.FieldInfo{
		{Name: "Inner", Type: innerKey, Embedded: true},
		{Name: "X", Type: meta.KeyString},
	}
	nameMap := r.BuildFieldNameMap(outerFields)

	require.Equal(t, []int{1}, nameMap["X"])
}

func TestBuildFieldNameMap_PromotesEmbeddedFieldByPath(t *testing.T) {
	r := meta.NewRegistry()

	innerKey := r.NewStruct([]meta.FieldInfo{{Name: "Y", Type: meta.KeyInt}})
	outerFields := []meta.FieldInfo{
		{Name: "Inner", Type: innerKey, Embedded: true},
	}
	nameMap := r.BuildFieldNameMap(outerFields)

	require.Equal(t, []int{0, 0}, nameMap["Y"])
}
