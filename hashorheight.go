package btcschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// HashOrHeight identifies a block either by its hash or by its height. A
// number of bitcoin RPC methods accept both forms in the same position, so
// the JSON encoding is untagged: a hash appears as the usual reversed hex
// string, a height as a bare non-negative number. The decoder picks the
// variant from the shape of the value alone. Adding a discriminator field
// would break compatibility with that API, so the encoding must stay as is.
//
// The zero value is Height(0).
type HashOrHeight struct {
	hash   chainhash.Hash
	height uint32
	isHash bool
}

// NewHashOrHeightFromHash wraps a block hash.
func NewHashOrHeightFromHash(hash chainhash.Hash) HashOrHeight {
	return HashOrHeight{
		hash:   hash,
		isHash: true,
	}
}

// NewHashOrHeightFromHeight wraps a block height.
func NewHashOrHeightFromHeight(height uint32) HashOrHeight {
	return HashOrHeight{
		height: height,
	}
}

// IsHash returns true if this identifies a block by its hash.
func (h HashOrHeight) IsHash() bool {
	return h.isHash
}

// IsHeight returns true if this identifies a block by its height.
func (h HashOrHeight) IsHeight() bool {
	return !h.isHash
}

// AsHash returns the block hash if this is the hash variant.
func (h HashOrHeight) AsHash() fn.Option[chainhash.Hash] {
	if !h.isHash {
		return fn.None[chainhash.Hash]()
	}

	return fn.Some(h.hash)
}

// AsHeight returns the block height if this is the height variant.
func (h HashOrHeight) AsHeight() fn.Option[uint32] {
	if h.isHash {
		return fn.None[uint32]()
	}

	return fn.Some(h.height)
}

// String returns the reversed hex encoding of the hash, or the decimal
// encoding of the height.
func (h HashOrHeight) String() string {
	if h.isHash {
		return h.hash.String()
	}

	return strconv.FormatUint(uint64(h.height), 10)
}

// MarshalJSON encodes the identifier untagged: the hash variant as a hex
// string, the height variant as a bare number.
func (h HashOrHeight) MarshalJSON() ([]byte, error) {
	if h.isHash {
		return json.Marshal(h.hash.String())
	}

	return json.Marshal(h.height)
}

// UnmarshalJSON decodes the untagged form by inspecting the syntactic
// category of the raw value: a JSON string is decoded as a block hash, a
// JSON number as a height. Anything else is rejected.
func (h *HashOrHeight) UnmarshalJSON(data []byte) error {
	token := bytes.TrimSpace(data)
	if len(token) == 0 {
		return fmt.Errorf("empty value for hash or height")
	}

	switch {
	case token[0] == '"':
		var hashStr string
		if err := json.Unmarshal(data, &hashStr); err != nil {
			return err
		}

		hash, err := chainhash.NewHashFromStr(hashStr)
		if err != nil {
			return fmt.Errorf("invalid block hash %q: %w",
				hashStr, err)
		}

		*h = NewHashOrHeightFromHash(*hash)

		return nil

	case token[0] == '-' || (token[0] >= '0' && token[0] <= '9'):
		var height uint32
		if err := json.Unmarshal(data, &height); err != nil {
			return fmt.Errorf("invalid block height %s: %w",
				string(token), err)
		}

		*h = NewHashOrHeightFromHeight(height)

		return nil

	default:
		return fmt.Errorf("hash or height must be a string or a "+
			"number, got %s", string(token))
	}
}
