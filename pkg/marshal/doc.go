// Package marshal holds the per-flag value marshallers and the registry that
// maps flag identifiers to them.
//
// A Marshaller owns exactly one scalar value. Set consumes whatever tokens its
// kind needs from a shared Cursor and stores the converted value; Value
// returns it. Four implementations exist, one per domain.Kind.
package marshal
