package lists

// KeyValuePair is a tuple, used by the cache API to let callers set many
// entries in one call.
type KeyValuePair[TK any, TV any] struct {
	// Key is the key part in the pair.
	Key TK
	// Value is the value part in the pair.
	Value TV
}
