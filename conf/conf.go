package conf

import "fmt"

// Configuration is an ordered mapping from string key to Value. Keys are
// unique; insertion order is preserved for stable enumeration and
// serialization, but lookups are by key, not position. Not safe for
// concurrent mutation; DeriveInput and Copy never mutate their receiver or
// argument, so read-only sharing across goroutines is fine.
type Configuration struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Configuration.
func New() *Configuration {
	return &Configuration{values: make(map[string]Value)}
}

// Set stores v under key, overwriting any existing entry. A new key is
// appended to the enumeration order; an overwritten key keeps its position.
func (c *Configuration) Set(key string, v Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// SetString stores a string value under key.
func (c *Configuration) SetString(key, s string) { c.Set(key, StringValue(s)) }

// SetInt stores an int value under key.
func (c *Configuration) SetInt(key string, i int64) { c.Set(key, IntValue(i)) }

// SetFloat stores a float value under key.
func (c *Configuration) SetFloat(key string, f float64) { c.Set(key, FloatValue(f)) }

// SetBool stores a bool value under key.
func (c *Configuration) SetBool(key string, b bool) { c.Set(key, BoolValue(b)) }

// SetClass stores a class reference under key.
func (c *Configuration) SetClass(key, name string) { c.Set(key, ClassValue(name)) }

// Get returns the value for key, or a zero Value and false if not present.
func (c *Configuration) Get(key string) (Value, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Contains reports whether key is present.
func (c *Configuration) Contains(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString returns the string stored under key. Returns ErrNotSet (wrapped)
// if the key is absent, or a WrongTypeError if the value is not a string.
func (c *Configuration) GetString(key string) (string, error) {
	v, err := c.get(key, KindString)
	if err != nil {
		return "", err
	}
	return v.s, nil
}

// GetInt returns the int stored under key.
func (c *Configuration) GetInt(key string) (int64, error) {
	v, err := c.get(key, KindInt)
	if err != nil {
		return 0, err
	}
	return v.i, nil
}

// GetFloat returns the float stored under key.
func (c *Configuration) GetFloat(key string) (float64, error) {
	v, err := c.get(key, KindFloat)
	if err != nil {
		return 0, err
	}
	return v.f, nil
}

// GetBool returns the bool stored under key.
func (c *Configuration) GetBool(key string) (bool, error) {
	v, err := c.get(key, KindBool)
	if err != nil {
		return false, err
	}
	return v.b, nil
}

// GetClass returns the class reference stored under key. A string value is
// accepted too: serialized configurations cannot distinguish a class name
// from a plain string.
func (c *Configuration) GetClass(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("conf: %q: %w", key, ErrNotSet)
	}
	if v.kind != KindClass && v.kind != KindString {
		return "", &WrongTypeError{Key: key, Want: KindClass, Got: v.kind}
	}
	return v.s, nil
}

func (c *Configuration) get(key string, want Kind) (Value, error) {
	v, ok := c.values[key]
	if !ok {
		return Value{}, fmt.Errorf("conf: %q: %w", key, ErrNotSet)
	}
	if v.kind != want {
		return Value{}, &WrongTypeError{Key: key, Want: want, Got: v.kind}
	}
	return v, nil
}

// Delete removes key if present and reports whether it was.
func (c *Configuration) Delete(key string) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns all keys in insertion order. The returned slice is a copy.
func (c *Configuration) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entries.
func (c *Configuration) Len() int { return len(c.values) }

// Copy returns an independent Configuration with the same entries in the
// same order. Mutating either never affects the other.
func (c *Configuration) Copy() *Configuration {
	out := &Configuration{
		keys:   make([]string, len(c.keys)),
		values: make(map[string]Value, len(c.values)),
	}
	copy(out.keys, c.keys)
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether both configurations hold the same keys with equal
// values. Enumeration order is not compared (it is not semantically
// significant).
func (c *Configuration) Equal(other *Configuration) bool {
	if c.Len() != other.Len() {
		return false
	}
	for k, v := range c.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
