package v1

// Parse is the document parsing namespace of the host API.
type Parse interface {
	// JSON parses a JSON document. Fails with ErrInvalidInput on malformed
	// input.
	JSON(data []byte) (Value, error)
}

// Value is a navigable node of a parsed document. Lookups on missing paths
// return a non-nil Value whose Exists reports false and whose scalar
// accessors return zero values.
type Value interface {
	// Exists reports whether the node is present in the document.
	Exists() bool

	// Get navigates a dot-separated path below the node.
	Get(path string) Value

	String() string
	Int() int64
	Float() float64
	Bool() bool

	// Array returns the element nodes when the node is an array.
	Array() []Value

	// Map returns the child nodes when the node is an object.
	Map() map[string]Value

	// Raw returns the underlying document fragment.
	Raw() string
}
