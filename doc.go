/*
Package args is a schema-driven command-line argument parser.

A compact schema string declares the expected flags and their value types;
a list of raw tokens is then validated against it, and the flag values are
extracted and converted.

# Schema

The schema is a comma-separated list of elements. Each element is a single
letter followed by an optional type suffix:

	x     boolean, set by presence
	x*    string, taken from the next token
	x#    integer, taken from the next token
	x##   double, taken from the next token

# Parsing

Tokens starting with "-" are flag groups: every character after the dash is
a flag of its own, so "-xy" sets both x and y. Other tokens are ignored
unless a preceding flag consumed them as its value.

A malformed schema makes New fail. Bad user input never does: it is
recorded on the returned Args and surfaced through IsValid and ErrorMessage.
Getters never fail and return the type's zero value for unknown flags,
flags of another type, and flags whose value could not be parsed, so callers
must check IsValid before trusting them.

# Usage

	a, err := args.New("l,p#,d*", os.Args[1:])
	if err != nil {
		log.Fatal(err) // malformed schema
	}
	if !a.IsValid() {
		msg, _ := a.ErrorMessage()
		fmt.Fprintln(os.Stderr, msg)
		fmt.Fprintln(os.Stderr, "usage:", a.Usage())
		os.Exit(2)
	}
	logging := a.GetBoolean('l')
	port := a.GetInt('p')
	dir := a.GetString('d')

# Observability

New accepts a structured logger (WithLogger) for debug diagnostics and
lifecycle hooks (WithHooks) that fire for every parsed flag, every
unexpected flag, and the recorded error.
*/
package args
