package btcschema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// BtcArgument describes a single argument accepted by a bitcoin RPC method.
// Arguments are plain data carried verbatim from the source document, no
// field is derived or validated at this layer.
type BtcArgument struct {
	// Names holds the accepted names of the argument. The first entry
	// is the canonical name.
	Names []string `json:"names"`

	// Description is the help text of the argument.
	Description string `json:"description"`

	// OnelineDescription is the short form used in compact help output.
	OnelineDescription string `json:"oneline_description"`

	// AlsoPositional is true if the argument may be passed positionally
	// as well as by name.
	AlsoPositional bool `json:"also_positional"`

	// TypeStr optionally overrides the type strings used when rendering
	// the argument. A nil slice means they are derived from Type.
	TypeStr []string `json:"type_str"`

	// Required is true if a call must supply the argument. Unlike the
	// result flag of the same name, this one is authored directly in
	// the source document and taken at face value.
	Required bool `json:"required"`

	// Hidden is true if the argument is omitted from help output.
	Hidden bool `json:"hidden"`

	// Type is the canonical type string of the argument.
	Type string `json:"type"`
}

// BtcMethod describes a single bitcoin RPC method: its name, documentation,
// the arguments it accepts and the result shapes it may produce.
type BtcMethod struct {
	// Name is the RPC method name.
	Name string `json:"name"`

	// Description is the help text of the method.
	Description string `json:"description"`

	// Examples holds example invocations, if any.
	Examples string `json:"examples"`

	// ArgumentNames mirrors the names of Arguments for quick lookup. It
	// is carried verbatim from the source document and is not checked
	// against Arguments, so the two may disagree for low quality input.
	ArgumentNames []string `json:"argument_names"`

	// Arguments holds the arguments of the method, in call order.
	Arguments []BtcArgument `json:"arguments"`

	// Results holds the possible top level result shapes. A method with
	// a verbose flag typically documents one shape per verbosity.
	Results []BtcResult `json:"results"`
}

// ApiDefinition is the complete set of method schemas of a bitcoin RPC
// surface, keyed by method name. Map keys marshal in sorted order, so the
// serialized form is deterministic.
type ApiDefinition struct {
	// RPCs maps a method name to its schema. Every key is expected to
	// equal its method's Name field. AddMethod maintains that invariant
	// for the entries it creates; callers populating the map directly
	// must maintain it themselves.
	RPCs map[string]BtcMethod `json:"rpcs"`
}

// NewApiDefinition returns an API definition with no methods.
func NewApiDefinition() *ApiDefinition {
	return &ApiDefinition{
		RPCs: make(map[string]BtcMethod),
	}
}

// LoadApiDefinition reads the JSON document at path and decodes and
// normalizes it into an API definition. Failures to read the file wrap
// ErrSchemaIO, malformed documents wrap ErrSchemaParse; in both cases no
// partial definition is returned.
func LoadApiDefinition(path string) (*ApiDefinition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read %s: %w",
			ErrSchemaIO, path, err)
	}

	apiDef, err := ParseApiDefinition(content)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	log.Debugf("Loaded API definition with %d methods from %s",
		apiDef.NumMethods(), path)

	return apiDef, nil
}

// ParseApiDefinition decodes a JSON API definition document and runs the
// normalization pass over every result tree of every method, deriving the
// Required flags. Malformed documents wrap ErrSchemaParse.
func ParseApiDefinition(content []byte) (*ApiDefinition, error) {
	var apiDef ApiDefinition
	if err := json.Unmarshal(content, &apiDef); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaParse, err)
	}

	apiDef.postProcess()

	return &apiDef, nil
}

// postProcess normalizes every result tree of every method. The map values
// are copies, but Results is a slice, so the walk below mutates the trees
// the map entries point at.
func (a *ApiDefinition) postProcess() {
	for _, method := range a.RPCs {
		for i := range method.Results {
			method.Results[i].PostProcess()
		}
	}
}

// GetMethod returns the schema of the named method, or None if the method
// is not part of the definition.
func (a *ApiDefinition) GetMethod(name string) fn.Option[BtcMethod] {
	method, ok := a.RPCs[name]
	if !ok {
		return fn.None[BtcMethod]()
	}

	return fn.Some(method)
}

// AddMethod inserts a method keyed by its own name, replacing any existing
// entry of that name.
func (a *ApiDefinition) AddMethod(method BtcMethod) {
	if a.RPCs == nil {
		a.RPCs = make(map[string]BtcMethod)
	}

	a.RPCs[method.Name] = method
}

// RemoveMethod drops the named method. Removing an unknown name is a no-op.
func (a *ApiDefinition) RemoveMethod(name string) {
	delete(a.RPCs, name)
}

// MethodNames returns the names of all methods in lexicographic order.
func (a *ApiDefinition) MethodNames() []string {
	names := make([]string, 0, len(a.RPCs))
	for name := range a.RPCs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NumMethods returns the number of methods in the definition.
func (a *ApiDefinition) NumMethods() int {
	return len(a.RPCs)
}

// WriteToFile serializes the definition as indented JSON at path. Since map
// keys marshal sorted, the output bytes are deterministic for a given
// definition. Write failures wrap ErrSchemaIO.
func (a *ApiDefinition) WriteToFile(path string) error {
	content, err := json.MarshalIndent(a, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaParse, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("%w: unable to write %s: %w",
			ErrSchemaIO, path, err)
	}

	log.Debugf("Wrote API definition with %d methods to %s",
		a.NumMethods(), path)

	return nil
}
