// Package btcschema provides a serializable description of a bitcoin
// JSON-RPC API surface: every method with its arguments and possible result
// shapes, loaded from a single JSON document. It is the shared source of
// truth for downstream code generators and fuzzing tools, which consume the
// loaded ApiDefinition instead of re-deriving the surface from help text.
//
// The package also defines HashOrHeight, the untagged block identifier some
// RPC methods accept, which is either a block hash or a block height in the
// same argument position.
package btcschema
