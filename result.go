package btcschema

import (
	"encoding/json"
)

// BtcResult describes one node of the shape a method's return value may
// take. Object and array results nest: their fields or elements appear as
// child nodes in Inner, to arbitrary depth. Each child is owned by exactly
// one parent, so a result is always a tree.
type BtcResult struct {
	// Type is the JSON type of the result value.
	Type string `json:"type"`

	// Optional is true if the result may be absent from a response.
	Optional bool `json:"optional"`

	// Description is the help text of the result.
	Description string `json:"description"`

	// SkipTypeCheck is true if consumers should not verify the type of
	// the value against Type.
	SkipTypeCheck bool `json:"skip_type_check"`

	// KeyName is the field name this result is stored under when it is
	// one member of an enclosing object result.
	KeyName string `json:"key_name"`

	// Condition is a free text predicate describing when this result is
	// present in a response.
	Condition string `json:"condition"`

	// Inner holds the child results of an object or array result.
	Inner []BtcResult `json:"inner"`

	// Required mirrors !Optional at every depth of the tree. It is
	// derived by PostProcess after decoding; any value carried by the
	// source document is discarded, so it is only meaningful on trees
	// that went through the loader or an explicit PostProcess call.
	Required bool `json:"required"`
}

// UnmarshalJSON decodes a result node while discarding any required value
// the document may carry. Required is derived, only PostProcess sets it.
func (r *BtcResult) UnmarshalJSON(data []byte) error {
	// The local alias drops the custom unmarshaler, so decoding it
	// cannot recurse back into this method.
	type btcResultNoMethods BtcResult

	var node btcResultNoMethods
	if err := json.Unmarshal(data, &node); err != nil {
		return err
	}

	node.Required = false
	*r = BtcResult(node)

	return nil
}

// PostProcess derives the Required flag on this node and every descendant.
// A node is required exactly when it is not optional. The walk is a
// pre-order depth first traversal and is idempotent, since it only ever
// reads Optional.
func (r *BtcResult) PostProcess() {
	r.Required = !r.Optional

	for i := range r.Inner {
		r.Inner[i].PostProcess()
	}
}
